package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"habitd/internal/repository"
	tokenIssuer "habitd/pkg/jwt"
)

var ErrIncorrectPassword error = errors.New("incorrect username or password")
var ErrNotFound error = errors.New("record not found")
var ErrUserExists error = errors.New("username already taken")
var ErrTrackerExists error = errors.New("tracker already recorded for this date")
var ErrNotAllowed error = errors.New("operation not allowed")
var ErrInvalidToken error = errors.New("invalid or expired token")

// HabitTracker implements the application's use cases: registration, token
// issuance and the ownership-scoped CRUD over users, habits and trackers.
type HabitTracker struct {
	logs          *zap.SugaredLogger
	repo          Repository
	jwtIssuer     JWTIssuer
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewHabitTracker(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, accessExpiry, refreshExpiry time.Duration) *HabitTracker {
	return &HabitTracker{
		logs:          logger,
		repo:          repo,
		jwtIssuer:     jwt,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Register creates a new non-admin user with a bcrypt-hashed password.
func (h *HabitTracker) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := h.repo.CreateUser(ctx, repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	h.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return userToRecord(user), nil
}

// Login verifies the credentials and issues an access/refresh token pair. A
// missing user and a wrong password are deliberately the same error.
func (h *HabitTracker) Login(ctx context.Context, msg LoginMessage) (TokenPair, error) {
	user, err := h.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TokenPair{}, ErrIncorrectPassword
		}
		return TokenPair{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return TokenPair{}, ErrIncorrectPassword
	}

	return h.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (h *HabitTracker) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	user, err := h.resolveToken(ctx, refreshToken, tokenIssuer.TypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	return h.issueTokens(user)
}

// Authorize resolves a bearer token into the user it was issued to. Any
// failure (bad signature, expiry, wrong token type, deleted user) is
// ErrInvalidToken.
func (h *HabitTracker) Authorize(ctx context.Context, token string) (UserRecord, error) {
	user, err := h.resolveToken(ctx, token, tokenIssuer.TypeAccess)
	if err != nil {
		return UserRecord{}, err
	}

	return userToRecord(user), nil
}

func (h *HabitTracker) resolveToken(ctx context.Context, token, wantType string) (repository.User, error) {
	claims, err := h.jwtIssuer.Validate(token)
	if err != nil {
		return repository.User{}, fmt.Errorf("validate jwt token: %w: %w", err, ErrInvalidToken)
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != wantType {
		return repository.User{}, fmt.Errorf("unexpected token type %q: %w", tokenType, ErrInvalidToken)
	}

	subject, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return repository.User{}, fmt.Errorf("parse token subject: %w", ErrInvalidToken)
	}

	user, err := h.repo.GetUserByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, ErrInvalidToken
		}
		return repository.User{}, fmt.Errorf("get user from db: %w", err)
	}

	return user, nil
}

func (h *HabitTracker) issueTokens(user repository.User) (TokenPair, error) {
	subject := strconv.FormatUint(uint64(user.ID), 10)

	access := h.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    subject,
		UserName:   user.Username,
		TokenType:  tokenIssuer.TypeAccess,
		Expiration: h.accessExpiry,
	})
	signedAccess, err := h.jwtIssuer.Sign(access)
	if err != nil {
		return TokenPair{}, fmt.Errorf("signing access token: %w", err)
	}

	refresh := h.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    subject,
		UserName:   user.Username,
		TokenType:  tokenIssuer.TypeRefresh,
		Expiration: h.refreshExpiry,
	})
	signedRefresh, err := h.jwtIssuer.Sign(refresh)
	if err != nil {
		return TokenPair{}, fmt.Errorf("signing refresh token: %w", err)
	}

	h.logs.Infow("tokens issued", "user_id", user.ID, "username", user.Username)

	return TokenPair{
		AccessToken:  signedAccess,
		RefreshToken: signedRefresh,
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(h.accessExpiry),
	}, nil
}

// EnsureAdmin seeds an administrator account at startup. Seeding an existing
// username is a no-op so restarts stay idempotent.
func (h *HabitTracker) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = h.repo.CreateUser(ctx, repository.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create admin user: %w", err)
	}

	h.logs.Infow("admin user seeded", "username", username)
	return nil
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:        user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func habitToRecord(habit repository.Habit) HabitRecord {
	return HabitRecord{
		ID:          habit.ID,
		UserID:      habit.UserID,
		Name:        habit.Name,
		Description: habit.Description,
		Frequency:   habit.Frequency,
		Target:      habit.Target,
		Reminder:    habit.Reminder,
		Archived:    habit.Archived,
		SortOrder:   habit.SortOrder,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}

func trackerToRecord(tracker repository.Tracker) TrackerRecord {
	return TrackerRecord{
		ID:        tracker.ID,
		HabitID:   tracker.HabitID,
		Dated:     tracker.Dated.Format(DateFormat),
		Status:    tracker.Status,
		Note:      tracker.Note,
		CreatedAt: tracker.CreatedAt,
		UpdatedAt: tracker.UpdatedAt,
	}
}
