package handler

import (
	"context"
	"net/http"

	"habitd/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name HabitService . HabitService
type HabitService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Login(ctx context.Context, msg core.LoginMessage) (core.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (core.TokenPair, error)
	Authorize(ctx context.Context, token string) (core.UserRecord, error)

	GetUser(ctx context.Context, caller core.UserRecord, userID uint) (core.UserRecord, error)
	ListUsers(ctx context.Context, caller core.UserRecord) ([]core.UserRecord, error)
	UpdateUser(ctx context.Context, caller core.UserRecord, userID uint, msg core.UserUpdate) (core.UserRecord, error)
	DeleteUser(ctx context.Context, caller core.UserRecord, userID uint) error

	CreateHabit(ctx context.Context, caller core.UserRecord, msg core.HabitMessage) (core.HabitRecord, error)
	GetHabit(ctx context.Context, caller core.UserRecord, habitID uint) (core.HabitRecord, error)
	ListHabits(ctx context.Context, caller core.UserRecord) ([]core.HabitRecord, error)
	UpdateHabit(ctx context.Context, caller core.UserRecord, habitID uint, msg core.HabitUpdate) (core.HabitRecord, error)
	DeleteHabit(ctx context.Context, caller core.UserRecord, habitID uint) error
	SortHabits(ctx context.Context, caller core.UserRecord, habitIDs []uint) error

	CreateTracker(ctx context.Context, caller core.UserRecord, msg core.TrackerMessage) (core.TrackerRecord, error)
	GetTracker(ctx context.Context, caller core.UserRecord, trackerID uint) (core.TrackerRecord, error)
	ListTrackers(ctx context.Context, caller core.UserRecord) ([]core.TrackerRecord, error)
	ListHabitTrackers(ctx context.Context, caller core.UserRecord, habitID uint, limit int) ([]core.TrackerRecord, error)
	UpdateTracker(ctx context.Context, caller core.UserRecord, trackerID uint, msg core.TrackerUpdate) (core.TrackerRecord, error)
	DeleteTracker(ctx context.Context, caller core.UserRecord, trackerID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
