package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"habitd/internal/core"
	"habitd/internal/http/handler/middleware"
)

// Route patterns, registered verbatim on the mux. The literal
// "PUT /habits/sort" outranks the "PUT /habits/{id}" wildcard.
const (
	Register = "POST /auth/register"
	Login    = "POST /auth/login"
	Refresh  = "POST /auth/refresh"

	ListUsers  = "GET /users"
	GetUser    = "GET /users/{id}"
	UpdateUser = "PUT /users/{id}"
	DeleteUser = "DELETE /users/{id}"

	ListHabits  = "GET /habits"
	CreateHabit = "POST /habits"
	GetHabit    = "GET /habits/{id}"
	UpdateHabit = "PUT /habits/{id}"
	DeleteHabit = "DELETE /habits/{id}"
	SortHabits  = "PUT /habits/sort"

	ListTrackers      = "GET /trackers"
	CreateTracker     = "POST /trackers"
	GetTracker        = "GET /trackers/{id}"
	UpdateTracker     = "PUT /trackers/{id}"
	DeleteTracker     = "DELETE /trackers/{id}"
	ListHabitTrackers = "GET /habits/{id}/trackers"
)

var errMissingToken error = errors.New("bearer token is required")
var errBadResourceID error = errors.New("resource id must be a positive integer")
var errBadLimit error = errors.New("limit must be between 1 and 1000")

type HabitHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tracker          HabitService
}

func NewHabitHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, habitService HabitService) *HabitHandler {
	return &HabitHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tracker:          habitService,
	}
}

func requestID(r *http.Request) string {
	if val := r.Context().Value(middleware.RequestIDKey); val != nil {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}

// authorize resolves the caller from the Authorization header.
func (h *HabitHandler) authorize(r *http.Request) (core.UserRecord, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return core.UserRecord{}, errMissingToken
	}

	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found {
		return core.UserRecord{}, errMissingToken
	}

	return h.tracker.Authorize(r.Context(), token)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errBadResourceID
	}
	return uint(id), nil
}

// queryLimit parses the optional ?limit query parameter; absent means no cap.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > 1000 {
		return 0, errBadLimit
	}
	return limit, nil
}

func (h *HabitHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// respondErr maps a core error onto the HTTP taxonomy and logs it. Unknown
// errors come back as an opaque 500.
func (h *HabitHandler) respondErr(w http.ResponseWriter, message string, err error, route, requestId string) {
	code := errorStatus(err)

	resp := Response{Message: message}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	} else {
		resp.Error = err.Error()
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrIncorrectPassword),
		errors.Is(err, errMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, core.ErrNotFound),
		errors.Is(err, errBadResourceID):
		return http.StatusNotFound
	case errors.Is(err, core.ErrUserExists),
		errors.Is(err, core.ErrTrackerExists):
		return http.StatusConflict
	case errors.Is(err, errBadLimit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
