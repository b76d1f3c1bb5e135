package handler

import (
	"fmt"
	"net/http"

	"habitd/internal/http/payload"
)

func (h *HabitHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, ListUsers, requestId)
		return
	}

	users, err := h.tracker.ListUsers(r.Context(), caller)
	if err != nil {
		h.respondErr(w, "Could not list users", err, ListUsers, requestId)
		return
	}

	h.respond(w, map[string]any{"users": users}, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, GetUser, requestId)
		return
	}

	userId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not retrieve user", err, GetUser, requestId)
		return
	}

	user, err := h.tracker.GetUser(r.Context(), caller, userId)
	if err != nil {
		h.respondErr(w, "Could not retrieve user", err, GetUser, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, UpdateUser, requestId)
		return
	}

	userId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not update user", err, UpdateUser, requestId)
		return
	}

	var req payload.UserUpdateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestId)
		return
	}

	user, err := h.tracker.UpdateUser(r.Context(), caller, userId, req.ToMessage())
	if err != nil {
		h.respondErr(w, "Could not update user", err, UpdateUser, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, DeleteUser, requestId)
		return
	}

	userId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not delete user", err, DeleteUser, requestId)
		return
	}

	if err := h.tracker.DeleteUser(r.Context(), caller, userId); err != nil {
		h.respondErr(w, "Could not delete user", err, DeleteUser, requestId)
		return
	}

	h.respond(w, Response{Message: "User deleted successfully"}, http.StatusOK, requestId)
}
