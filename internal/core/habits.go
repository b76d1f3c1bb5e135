package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habitd/internal/repository"
)

func (h *HabitTracker) CreateHabit(ctx context.Context, caller UserRecord, msg HabitMessage) (HabitRecord, error) {
	target := msg.Target
	if target <= 0 {
		target = 1
	}

	habit, err := h.repo.CreateHabit(ctx, repository.Habit{
		UserID:      caller.ID,
		Name:        msg.Name,
		Description: msg.Description,
		Frequency:   msg.Frequency,
		Target:      target,
		Reminder:    msg.Reminder,
		SortOrder:   msg.SortOrder,
	})
	if err != nil {
		return HabitRecord{}, fmt.Errorf("create habit: %w", err)
	}

	h.logs.Infow("habit created", "habit_id", habit.ID, "user_id", caller.ID)
	return habitToRecord(habit), nil
}

func (h *HabitTracker) GetHabit(ctx context.Context, caller UserRecord, habitID uint) (HabitRecord, error) {
	habit, err := h.repo.GetHabit(ctx, habitID, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return HabitRecord{}, ErrNotFound
		}
		return HabitRecord{}, fmt.Errorf("get habit: %w", err)
	}

	return habitToRecord(habit), nil
}

func (h *HabitTracker) ListHabits(ctx context.Context, caller UserRecord) ([]HabitRecord, error) {
	habits, err := h.repo.ListHabits(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	records := make([]HabitRecord, len(habits))
	for i, habit := range habits {
		records[i] = habitToRecord(habit)
	}
	return records, nil
}

func (h *HabitTracker) UpdateHabit(ctx context.Context, caller UserRecord, habitID uint, msg HabitUpdate) (HabitRecord, error) {
	fields := map[string]any{"updated_at": time.Now()}
	if msg.Name != nil {
		fields["name"] = *msg.Name
	}
	if msg.Description != nil {
		fields["description"] = *msg.Description
	}
	if msg.Frequency != nil {
		fields["frequency"] = *msg.Frequency
	}
	if msg.Target != nil {
		fields["target"] = *msg.Target
	}
	if msg.Reminder != nil {
		fields["reminder"] = *msg.Reminder
	}
	if msg.Archived != nil {
		fields["archived"] = *msg.Archived
	}
	if msg.SortOrder != nil {
		fields["sort_order"] = *msg.SortOrder
	}

	habit, err := h.repo.UpdateHabit(ctx, habitID, caller.ID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return HabitRecord{}, ErrNotFound
		}
		return HabitRecord{}, fmt.Errorf("update habit: %w", err)
	}

	h.logs.Infow("habit updated", "habit_id", habitID, "user_id", caller.ID)
	return habitToRecord(habit), nil
}

// DeleteHabit removes a habit and, via the cascading foreign key, every
// tracker recorded against it.
func (h *HabitTracker) DeleteHabit(ctx context.Context, caller UserRecord, habitID uint) error {
	err := h.repo.DeleteHabit(ctx, habitID, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete habit: %w", err)
	}

	h.logs.Infow("habit deleted", "habit_id", habitID, "user_id", caller.ID)
	return nil
}

// SortHabits reorders the caller's habits to match the given id sequence. Any
// id that does not resolve to one of the caller's habits fails the request.
func (h *HabitTracker) SortHabits(ctx context.Context, caller UserRecord, habitIDs []uint) error {
	err := h.repo.SortHabits(ctx, caller.ID, habitIDs)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("sort habits: %w", err)
	}

	h.logs.Infow("habits sorted", "user_id", caller.ID, "count", len(habitIDs))
	return nil
}

// ListHabitTrackers returns the entries of one of the caller's habits, newest
// first. A limit of zero returns them all.
func (h *HabitTracker) ListHabitTrackers(ctx context.Context, caller UserRecord, habitID uint, limit int) ([]TrackerRecord, error) {
	trackers, err := h.repo.ListHabitTrackers(ctx, habitID, caller.ID, limit)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("list habit trackers: %w", err)
	}

	records := make([]TrackerRecord, len(trackers))
	for i, tracker := range trackers {
		records[i] = trackerToRecord(tracker)
	}
	return records, nil
}
