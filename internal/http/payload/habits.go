package payload

import (
	"github.com/jellydator/validation"

	"habitd/internal/core"
)

var frequencies = []any{"daily", "weekly", "monthly"}

type HabitCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Frequency   string  `json:"frequency"`
	Target      int     `json:"target"`
	Reminder    bool    `json:"reminder"`
	SortOrder   int     `json:"sort_order"`
}

func (h HabitCreateRequest) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&h.Frequency, validation.Required, validation.In(frequencies...)),
		validation.Field(&h.Target, validation.Min(0), validation.Max(1000)),
		validation.Field(&h.SortOrder, validation.Min(0)),
	)
}

func (h HabitCreateRequest) ToMessage() core.HabitMessage {
	return core.HabitMessage{
		Name:        h.Name,
		Description: h.Description,
		Frequency:   h.Frequency,
		Target:      h.Target,
		Reminder:    h.Reminder,
		SortOrder:   h.SortOrder,
	}
}

type HabitUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency"`
	Target      *int    `json:"target"`
	Reminder    *bool   `json:"reminder"`
	Archived    *bool   `json:"archived"`
	SortOrder   *int    `json:"sort_order"`
}

func (h HabitUpdateRequest) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&h.Frequency, validation.In(frequencies...)),
		validation.Field(&h.Target, validation.Min(1), validation.Max(1000)),
		validation.Field(&h.SortOrder, validation.Min(0)),
	)
}

func (h HabitUpdateRequest) ToMessage() core.HabitUpdate {
	return core.HabitUpdate{
		Name:        h.Name,
		Description: h.Description,
		Frequency:   h.Frequency,
		Target:      h.Target,
		Reminder:    h.Reminder,
		Archived:    h.Archived,
		SortOrder:   h.SortOrder,
	}
}

// HabitSortRequest carries the caller's habit ids in the desired display
// order.
type HabitSortRequest struct {
	HabitIDs []uint `json:"habit_ids"`
}

func (h HabitSortRequest) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.HabitIDs, validation.Required, validation.By(uniqueIDs)),
	)
}

func uniqueIDs(value any) error {
	ids, ok := value.([]uint)
	if !ok {
		return validation.NewError("validation_ids", "must be a list of ids")
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return validation.NewError("validation_ids_unique", "must not contain duplicate ids")
		}
		seen[id] = struct{}{}
	}
	return nil
}
