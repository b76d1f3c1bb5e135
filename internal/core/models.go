package core

import "time"

// DateFormat is the wire format for tracker dates.
const DateFormat = "2006-01-02"

type UserRecord struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt time.Time  `json:"created_date"`
	UpdatedAt *time.Time `json:"updated_date,omitempty"`
}

type HabitRecord struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Frequency   string     `json:"frequency"`
	Target      int        `json:"target"`
	Reminder    bool       `json:"reminder"`
	Archived    bool       `json:"archived"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_date"`
	UpdatedAt   *time.Time `json:"updated_date,omitempty"`
}

type TrackerRecord struct {
	ID        uint       `json:"id"`
	HabitID   uint       `json:"habit_id"`
	Dated     string     `json:"dated"`
	Status    int        `json:"status"`
	Note      *string    `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_date"`
	UpdatedAt *time.Time `json:"updated_date,omitempty"`
}

// TokenPair is the credential set handed out on login, register and refresh.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type RegisterMessage struct {
	Username string
	Password string
}

type LoginMessage struct {
	Username string
	Password string
}

type UserUpdate struct {
	Username *string
	Password *string
}

type HabitMessage struct {
	Name        string
	Description *string
	Frequency   string
	Target      int
	Reminder    bool
	SortOrder   int
}

type HabitUpdate struct {
	Name        *string
	Description *string
	Frequency   *string
	Target      *int
	Reminder    *bool
	Archived    *bool
	SortOrder   *int
}

type TrackerMessage struct {
	HabitID uint
	Dated   time.Time
	Status  int
	Note    *string
}

type TrackerUpdate struct {
	Dated  *time.Time
	Status *int
	Note   *string
}
