package handler

import (
	"fmt"
	"net/http"

	"habitd/internal/http/payload"
)

func (h *HabitHandler) HandleListHabits(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, ListHabits, requestId)
		return
	}

	habits, err := h.tracker.ListHabits(r.Context(), caller)
	if err != nil {
		h.respondErr(w, "Could not list habits", err, ListHabits, requestId)
		return
	}

	h.respond(w, map[string]any{"habits": habits}, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleCreateHabit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, CreateHabit, requestId)
		return
	}

	var req payload.HabitCreateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create habit",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateHabit,
			"request_id", requestId)
		return
	}

	habit, err := h.tracker.CreateHabit(r.Context(), caller, req.ToMessage())
	if err != nil {
		h.respondErr(w, "Could not create habit", err, CreateHabit, requestId)
		return
	}

	h.respond(w, habit, http.StatusCreated, requestId)
}

func (h *HabitHandler) HandleGetHabit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, GetHabit, requestId)
		return
	}

	habitId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not retrieve habit", err, GetHabit, requestId)
		return
	}

	habit, err := h.tracker.GetHabit(r.Context(), caller, habitId)
	if err != nil {
		h.respondErr(w, "Could not retrieve habit", err, GetHabit, requestId)
		return
	}

	h.respond(w, habit, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleUpdateHabit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, UpdateHabit, requestId)
		return
	}

	habitId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not update habit", err, UpdateHabit, requestId)
		return
	}

	var req payload.HabitUpdateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update habit",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateHabit,
			"request_id", requestId)
		return
	}

	habit, err := h.tracker.UpdateHabit(r.Context(), caller, habitId, req.ToMessage())
	if err != nil {
		h.respondErr(w, "Could not update habit", err, UpdateHabit, requestId)
		return
	}

	h.respond(w, habit, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, DeleteHabit, requestId)
		return
	}

	habitId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not delete habit", err, DeleteHabit, requestId)
		return
	}

	if err := h.tracker.DeleteHabit(r.Context(), caller, habitId); err != nil {
		h.respondErr(w, "Could not delete habit", err, DeleteHabit, requestId)
		return
	}

	h.respond(w, Response{Message: "Habit deleted successfully"}, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleSortHabits(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, SortHabits, requestId)
		return
	}

	var req payload.HabitSortRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not sort habits",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SortHabits,
			"request_id", requestId)
		return
	}

	if err := h.tracker.SortHabits(r.Context(), caller, req.HabitIDs); err != nil {
		h.respondErr(w, "Could not sort habits", err, SortHabits, requestId)
		return
	}

	h.respond(w, Response{Message: "Habits sorted successfully"}, http.StatusOK, requestId)
}
