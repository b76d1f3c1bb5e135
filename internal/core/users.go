package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"habitd/internal/repository"
)

// GetUser returns a user record visible to the caller. Someone else's
// account is reported as missing, not as forbidden.
func (h *HabitTracker) GetUser(ctx context.Context, caller UserRecord, userID uint) (UserRecord, error) {
	if !caller.IsAdmin && caller.ID != userID {
		return UserRecord{}, ErrNotFound
	}

	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserRecord{}, ErrNotFound
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}

	return userToRecord(user), nil
}

// ListUsers returns every account for admins and only the caller's own
// account otherwise.
func (h *HabitTracker) ListUsers(ctx context.Context, caller UserRecord) ([]UserRecord, error) {
	if !caller.IsAdmin {
		return []UserRecord{caller}, nil
	}

	users, err := h.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, user := range users {
		records[i] = userToRecord(user)
	}
	return records, nil
}

func (h *HabitTracker) UpdateUser(ctx context.Context, caller UserRecord, userID uint, msg UserUpdate) (UserRecord, error) {
	if !caller.IsAdmin && caller.ID != userID {
		return UserRecord{}, ErrNotFound
	}

	fields := map[string]any{"updated_at": time.Now()}
	if msg.Username != nil {
		fields["username"] = *msg.Username
	}
	if msg.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*msg.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserRecord{}, fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	user, err := h.repo.UpdateUser(ctx, userID, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return UserRecord{}, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("update user: %w", err)
	}

	h.logs.Infow("user updated", "user_id", userID, "by", caller.ID)
	return userToRecord(user), nil
}

// DeleteUser removes an account and, through the schema's cascading foreign
// keys, all of its habits and trackers. Admin only.
func (h *HabitTracker) DeleteUser(ctx context.Context, caller UserRecord, userID uint) error {
	if !caller.IsAdmin {
		return ErrNotAllowed
	}

	err := h.repo.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	h.logs.Infow("user deleted", "user_id", userID, "by", caller.ID)
	return nil
}
