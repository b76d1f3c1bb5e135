package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"habitd/internal/repository"
	tokenIssuer "habitd/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID uint) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	UpdateUser(ctx context.Context, userID uint, fields map[string]any) (repository.User, error)
	DeleteUser(ctx context.Context, userID uint) error

	CreateHabit(ctx context.Context, habit repository.Habit) (repository.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uint) (repository.Habit, error)
	ListHabits(ctx context.Context, userID uint) ([]repository.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uint, fields map[string]any) (repository.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uint) error
	SortHabits(ctx context.Context, userID uint, habitIDs []uint) error

	CreateTracker(ctx context.Context, userID uint, tracker repository.Tracker) (repository.Tracker, error)
	GetTracker(ctx context.Context, trackerID, userID uint) (repository.Tracker, error)
	ListTrackers(ctx context.Context, userID uint) ([]repository.Tracker, error)
	ListHabitTrackers(ctx context.Context, habitID, userID uint, limit int) ([]repository.Tracker, error)
	UpdateTracker(ctx context.Context, trackerID, userID uint, fields map[string]any) (repository.Tracker, error)
	DeleteTracker(ctx context.Context, trackerID, userID uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
