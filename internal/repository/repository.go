package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habitd/internal/db"
)

var ErrNotFound error = errors.New("record not found")
var ErrDuplicate error = errors.New("duplicate record")

const createdAsc = "created_at ASC"

// HabitRepository owns all table access. Every mutating operation and every
// multi-step read runs inside a single database transaction.
type HabitRepository struct {
	db Storage
}

func NewHabitRepository(db Storage) *HabitRepository {
	return &HabitRepository{
		db: db,
	}
}

func (r *HabitRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Habit{}, &Tracker{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *HabitRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Transaction(ctx, func(tx Storage) error {
		return tx.Create(ctx, &user)
	})
	if err != nil {
		return User{}, wrapDBErr(err, "create user")
	}

	return user, nil
}

func (r *HabitRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, map[string]any{"username": username}, &user)
	if err != nil {
		return User{}, wrapDBErr(err, "get user by username")
	}

	return user, nil
}

func (r *HabitRepository) GetUserByID(ctx context.Context, userID uint) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, map[string]any{"id": userID}, &user)
	if err != nil {
		return User{}, wrapDBErr(err, "get user by id")
	}

	return user, nil
}

func (r *HabitRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAllBy(ctx, map[string]any{}, createdAsc, &users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *HabitRepository) UpdateUser(ctx context.Context, userID uint, fields map[string]any) (User, error) {
	var user User
	err := r.db.Transaction(ctx, func(tx Storage) error {
		affected, err := tx.UpdateFields(ctx, &User{}, map[string]any{"id": userID}, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return db.ErrNotFound
		}

		return tx.GetOneBy(ctx, map[string]any{"id": userID}, &user)
	})
	if err != nil {
		return User{}, wrapDBErr(err, "update user")
	}

	return user, nil
}

func (r *HabitRepository) DeleteUser(ctx context.Context, userID uint) error {
	err := r.db.Transaction(ctx, func(tx Storage) error {
		affected, err := tx.DeleteBy(ctx, &User{}, map[string]any{"id": userID})
		if err != nil {
			return err
		}
		if affected == 0 {
			return db.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return wrapDBErr(err, "delete user")
	}

	return nil
}

func (r *HabitRepository) CreateHabit(ctx context.Context, habit Habit) (Habit, error) {
	err := r.db.Transaction(ctx, func(tx Storage) error {
		return tx.Create(ctx, &habit)
	})
	if err != nil {
		return Habit{}, wrapDBErr(err, "create habit")
	}

	return habit, nil
}

// GetHabit loads a habit only when it belongs to the given user; a habit
// owned by someone else is indistinguishable from a missing one.
func (r *HabitRepository) GetHabit(ctx context.Context, habitID, userID uint) (Habit, error) {
	var habit Habit
	err := r.db.GetOneBy(ctx, map[string]any{"id": habitID, "user_id": userID}, &habit)
	if err != nil {
		return Habit{}, wrapDBErr(err, "get habit")
	}

	return habit, nil
}

func (r *HabitRepository) ListHabits(ctx context.Context, userID uint) ([]Habit, error) {
	habits := []Habit{}
	err := r.db.GetAllBy(ctx, map[string]any{"user_id": userID}, createdAsc, &habits)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	return habits, nil
}

func (r *HabitRepository) UpdateHabit(ctx context.Context, habitID, userID uint, fields map[string]any) (Habit, error) {
	var habit Habit
	err := r.db.Transaction(ctx, func(tx Storage) error {
		affected, err := tx.UpdateFields(ctx, &Habit{}, map[string]any{"id": habitID, "user_id": userID}, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return db.ErrNotFound
		}

		return tx.GetOneBy(ctx, map[string]any{"id": habitID}, &habit)
	})
	if err != nil {
		return Habit{}, wrapDBErr(err, "update habit")
	}

	return habit, nil
}

func (r *HabitRepository) DeleteHabit(ctx context.Context, habitID, userID uint) error {
	err := r.db.Transaction(ctx, func(tx Storage) error {
		affected, err := tx.DeleteBy(ctx, &Habit{}, map[string]any{"id": habitID, "user_id": userID})
		if err != nil {
			return err
		}
		if affected == 0 {
			return db.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return wrapDBErr(err, "delete habit")
	}

	return nil
}

// SortHabits rewrites the display order of a user's habits: the first id gets
// the lowest sort order. Archived habits outside the list keep their slots and
// archived habits inside it are left untouched. An id the user does not own
// fails the whole batch.
func (r *HabitRepository) SortHabits(ctx context.Context, userID uint, habitIDs []uint) error {
	err := r.db.Transaction(ctx, func(tx Storage) error {
		habits := []Habit{}
		if err := tx.GetAllBy(ctx, map[string]any{"user_id": userID}, "", &habits); err != nil {
			return err
		}

		owned := make(map[uint]Habit, len(habits))
		for _, habit := range habits {
			owned[habit.ID] = habit
		}

		requested := make(map[uint]struct{}, len(habitIDs))
		for _, id := range habitIDs {
			if _, ok := owned[id]; !ok {
				return db.ErrNotFound
			}
			requested[id] = struct{}{}
		}

		taken := make(map[int]struct{})
		for _, habit := range habits {
			if !habit.Archived {
				continue
			}
			if _, ok := requested[habit.ID]; !ok {
				taken[habit.SortOrder] = struct{}{}
			}
		}

		now := time.Now()
		next := 0
		for _, id := range habitIDs {
			if owned[id].Archived {
				continue
			}
			for {
				if _, ok := taken[next]; !ok {
					break
				}
				next++
			}

			fields := map[string]any{"sort_order": next, "updated_at": now}
			if _, err := tx.UpdateFields(ctx, &Habit{}, map[string]any{"id": id}, fields); err != nil {
				return err
			}
			next++
		}

		return nil
	})
	if err != nil {
		return wrapDBErr(err, "sort habits")
	}

	return nil
}

func (r *HabitRepository) CreateTracker(ctx context.Context, userID uint, tracker Tracker) (Tracker, error) {
	err := r.db.Transaction(ctx, func(tx Storage) error {
		var habit Habit
		if err := tx.GetOneBy(ctx, map[string]any{"id": tracker.HabitID, "user_id": userID}, &habit); err != nil {
			return err
		}

		return tx.Create(ctx, &tracker)
	})
	if err != nil {
		return Tracker{}, wrapDBErr(err, "create tracker")
	}

	return tracker, nil
}

func (r *HabitRepository) GetTracker(ctx context.Context, trackerID, userID uint) (Tracker, error) {
	var tracker Tracker
	err := r.db.Transaction(ctx, func(tx Storage) error {
		if err := tx.GetOneBy(ctx, map[string]any{"id": trackerID}, &tracker); err != nil {
			return err
		}

		var habit Habit
		return tx.GetOneBy(ctx, map[string]any{"id": tracker.HabitID, "user_id": userID}, &habit)
	})
	if err != nil {
		return Tracker{}, wrapDBErr(err, "get tracker")
	}

	return tracker, nil
}

func (r *HabitRepository) ListTrackers(ctx context.Context, userID uint) ([]Tracker, error) {
	trackers := []Tracker{}
	err := r.db.Transaction(ctx, func(tx Storage) error {
		habits := []Habit{}
		if err := tx.GetAllBy(ctx, map[string]any{"user_id": userID}, "", &habits); err != nil {
			return err
		}
		if len(habits) == 0 {
			return nil
		}

		habitIDs := make([]uint, 0, len(habits))
		for _, habit := range habits {
			habitIDs = append(habitIDs, habit.ID)
		}

		return tx.GetAllBy(ctx, map[string]any{"habit_id": habitIDs}, createdAsc, &trackers)
	})
	if err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}

	return trackers, nil
}

// ListHabitTrackers returns one habit's entries, newest date first, capped at
// limit when it is positive. The habit must belong to the given user.
func (r *HabitRepository) ListHabitTrackers(ctx context.Context, habitID, userID uint, limit int) ([]Tracker, error) {
	trackers := []Tracker{}
	err := r.db.Transaction(ctx, func(tx Storage) error {
		var habit Habit
		if err := tx.GetOneBy(ctx, map[string]any{"id": habitID, "user_id": userID}, &habit); err != nil {
			return err
		}

		return tx.GetSomeBy(ctx, map[string]any{"habit_id": habitID}, "dated DESC", limit, &trackers)
	})
	if err != nil {
		return nil, wrapDBErr(err, "list habit trackers")
	}

	return trackers, nil
}

func (r *HabitRepository) UpdateTracker(ctx context.Context, trackerID, userID uint, fields map[string]any) (Tracker, error) {
	var tracker Tracker
	err := r.db.Transaction(ctx, func(tx Storage) error {
		if err := tx.GetOneBy(ctx, map[string]any{"id": trackerID}, &tracker); err != nil {
			return err
		}

		var habit Habit
		if err := tx.GetOneBy(ctx, map[string]any{"id": tracker.HabitID, "user_id": userID}, &habit); err != nil {
			return err
		}

		if _, err := tx.UpdateFields(ctx, &Tracker{}, map[string]any{"id": trackerID}, fields); err != nil {
			return err
		}

		return tx.GetOneBy(ctx, map[string]any{"id": trackerID}, &tracker)
	})
	if err != nil {
		return Tracker{}, wrapDBErr(err, "update tracker")
	}

	return tracker, nil
}

func (r *HabitRepository) DeleteTracker(ctx context.Context, trackerID, userID uint) error {
	err := r.db.Transaction(ctx, func(tx Storage) error {
		var tracker Tracker
		if err := tx.GetOneBy(ctx, map[string]any{"id": trackerID}, &tracker); err != nil {
			return err
		}

		var habit Habit
		if err := tx.GetOneBy(ctx, map[string]any{"id": tracker.HabitID, "user_id": userID}, &habit); err != nil {
			return err
		}

		_, err := tx.DeleteBy(ctx, &Tracker{}, map[string]any{"id": trackerID})
		return err
	})
	if err != nil {
		return wrapDBErr(err, "delete tracker")
	}

	return nil
}

func wrapDBErr(err error, op string) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, db.ErrDuplicate):
		return ErrDuplicate
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
