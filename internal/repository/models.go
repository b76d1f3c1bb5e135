package repository

import "time"

// Tracker status values, lowest to highest "effort": not completed,
// skipped, completed.
const (
	StatusNotCompleted = 0
	StatusSkipped      = 1
	StatusCompleted    = 2
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	Habits       []Habit `gorm:"constraint:OnDelete:CASCADE"`
}

type Habit struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      uint    `gorm:"not null;index"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Frequency   string  `gorm:"type:varchar(32);not null;default:daily"` // daily, weekly, ...
	Target      int     `gorm:"not null;default:1"`                      // completions per period
	Reminder    bool    `gorm:"not null;default:false"`
	Archived    bool    `gorm:"not null;default:false"`
	SortOrder   int     `gorm:"not null"` // display position, lowest first
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Trackers    []Tracker `gorm:"constraint:OnDelete:CASCADE"`
}

type Tracker struct {
	ID        uint      `gorm:"primaryKey"`
	HabitID   uint      `gorm:"not null;uniqueIndex:idx_tracker_habit_dated"` // one entry per habit per date
	Dated     time.Time `gorm:"type:date;not null;uniqueIndex:idx_tracker_habit_dated"`
	Status    int       `gorm:"not null"`
	Note      *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}
