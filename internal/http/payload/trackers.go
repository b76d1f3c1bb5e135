package payload

import (
	"fmt"
	"time"

	"github.com/jellydator/validation"

	"habitd/internal/core"
	"habitd/internal/repository"
)

type TrackerCreateRequest struct {
	HabitID uint    `json:"habit_id"`
	Dated   string  `json:"dated"`
	Status  *int    `json:"status"`
	Note    *string `json:"note"`
}

func (t TrackerCreateRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.HabitID, validation.Required),
		validation.Field(&t.Dated, validation.Required, validation.Date(core.DateFormat)),
		validation.Field(&t.Status, validation.Min(repository.StatusNotCompleted), validation.Max(repository.StatusCompleted)),
	)
}

func (t TrackerCreateRequest) ToMessage() (core.TrackerMessage, error) {
	dated, err := time.Parse(core.DateFormat, t.Dated)
	if err != nil {
		return core.TrackerMessage{}, fmt.Errorf("parse tracker date: %w", err)
	}

	// an omitted status means the habit was completed
	status := repository.StatusCompleted
	if t.Status != nil {
		status = *t.Status
	}

	return core.TrackerMessage{
		HabitID: t.HabitID,
		Dated:   dated,
		Status:  status,
		Note:    t.Note,
	}, nil
}

type TrackerUpdateRequest struct {
	Dated  *string `json:"dated"`
	Status *int    `json:"status"`
	Note   *string `json:"note"`
}

func (t TrackerUpdateRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Dated, validation.Date(core.DateFormat)),
		validation.Field(&t.Status, validation.Min(repository.StatusNotCompleted), validation.Max(repository.StatusCompleted)),
	)
}

func (t TrackerUpdateRequest) ToMessage() (core.TrackerUpdate, error) {
	msg := core.TrackerUpdate{
		Status: t.Status,
		Note:   t.Note,
	}

	if t.Dated != nil {
		dated, err := time.Parse(core.DateFormat, *t.Dated)
		if err != nil {
			return core.TrackerUpdate{}, fmt.Errorf("parse tracker date: %w", err)
		}
		msg.Dated = &dated
	}

	return msg, nil
}
