package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habitd/internal/repository"
)

func (h *HabitTracker) CreateTracker(ctx context.Context, caller UserRecord, msg TrackerMessage) (TrackerRecord, error) {
	tracker, err := h.repo.CreateTracker(ctx, caller.ID, repository.Tracker{
		HabitID: msg.HabitID,
		Dated:   msg.Dated,
		Status:  msg.Status,
		Note:    msg.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return TrackerRecord{}, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return TrackerRecord{}, ErrTrackerExists
		}
		return TrackerRecord{}, fmt.Errorf("create tracker: %w", err)
	}

	h.logs.Infow("tracker created", "tracker_id", tracker.ID, "habit_id", tracker.HabitID, "user_id", caller.ID)
	return trackerToRecord(tracker), nil
}

func (h *HabitTracker) GetTracker(ctx context.Context, caller UserRecord, trackerID uint) (TrackerRecord, error) {
	tracker, err := h.repo.GetTracker(ctx, trackerID, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TrackerRecord{}, ErrNotFound
		}
		return TrackerRecord{}, fmt.Errorf("get tracker: %w", err)
	}

	return trackerToRecord(tracker), nil
}

func (h *HabitTracker) ListTrackers(ctx context.Context, caller UserRecord) ([]TrackerRecord, error) {
	trackers, err := h.repo.ListTrackers(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}

	records := make([]TrackerRecord, len(trackers))
	for i, tracker := range trackers {
		records[i] = trackerToRecord(tracker)
	}
	return records, nil
}

func (h *HabitTracker) UpdateTracker(ctx context.Context, caller UserRecord, trackerID uint, msg TrackerUpdate) (TrackerRecord, error) {
	fields := map[string]any{"updated_at": time.Now()}
	if msg.Dated != nil {
		fields["dated"] = *msg.Dated
	}
	if msg.Status != nil {
		fields["status"] = *msg.Status
	}
	if msg.Note != nil {
		fields["note"] = *msg.Note
	}

	tracker, err := h.repo.UpdateTracker(ctx, trackerID, caller.ID, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return TrackerRecord{}, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return TrackerRecord{}, ErrTrackerExists
		}
		return TrackerRecord{}, fmt.Errorf("update tracker: %w", err)
	}

	h.logs.Infow("tracker updated", "tracker_id", trackerID, "user_id", caller.ID)
	return trackerToRecord(tracker), nil
}

func (h *HabitTracker) DeleteTracker(ctx context.Context, caller UserRecord, trackerID uint) error {
	err := h.repo.DeleteTracker(ctx, trackerID, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete tracker: %w", err)
	}

	h.logs.Infow("tracker deleted", "tracker_id", trackerID, "user_id", caller.ID)
	return nil
}
