package handler

import (
	"fmt"
	"net/http"

	"habitd/internal/http/payload"
)

func (h *HabitHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, err := h.tracker.Register(r.Context(), req.ToMessage())
	if err != nil {
		h.respondErr(w, "Could not register", err, Register, requestId)
		return
	}

	h.respond(w, map[string]any{"user": user}, http.StatusCreated, requestId)
}

func (h *HabitHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	tokens, err := h.tracker.Login(r.Context(), req.ToMessage())
	if err != nil {
		h.respondErr(w, "Login failed", err, Login, requestId)
		return
	}

	h.respond(w, tokens, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RefreshRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not refresh token",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Refresh,
			"request_id", requestId)
		return
	}

	tokens, err := h.tracker.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.respondErr(w, "Could not refresh token", err, Refresh, requestId)
		return
	}

	h.respond(w, tokens, http.StatusOK, requestId)
}
