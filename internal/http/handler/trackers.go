package handler

import (
	"fmt"
	"net/http"

	"habitd/internal/http/payload"
)

func (h *HabitHandler) HandleListTrackers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, ListTrackers, requestId)
		return
	}

	trackers, err := h.tracker.ListTrackers(r.Context(), caller)
	if err != nil {
		h.respondErr(w, "Could not list trackers", err, ListTrackers, requestId)
		return
	}

	h.respond(w, map[string]any{"trackers": trackers}, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleListHabitTrackers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, ListHabitTrackers, requestId)
		return
	}

	habitId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not list habit trackers", err, ListHabitTrackers, requestId)
		return
	}

	limit, err := queryLimit(r)
	if err != nil {
		h.respondErr(w, "Could not list habit trackers", err, ListHabitTrackers, requestId)
		return
	}

	trackers, err := h.tracker.ListHabitTrackers(r.Context(), caller, habitId, limit)
	if err != nil {
		h.respondErr(w, "Could not list habit trackers", err, ListHabitTrackers, requestId)
		return
	}

	h.respond(w, map[string]any{"trackers": trackers}, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleCreateTracker(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, CreateTracker, requestId)
		return
	}

	var req payload.TrackerCreateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create tracker",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTracker,
			"request_id", requestId)
		return
	}

	msg, err := req.ToMessage()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create tracker",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	tracker, err := h.tracker.CreateTracker(r.Context(), caller, msg)
	if err != nil {
		h.respondErr(w, "Could not create tracker", err, CreateTracker, requestId)
		return
	}

	h.respond(w, tracker, http.StatusCreated, requestId)
}

func (h *HabitHandler) HandleGetTracker(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, GetTracker, requestId)
		return
	}

	trackerId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not retrieve tracker", err, GetTracker, requestId)
		return
	}

	tracker, err := h.tracker.GetTracker(r.Context(), caller, trackerId)
	if err != nil {
		h.respondErr(w, "Could not retrieve tracker", err, GetTracker, requestId)
		return
	}

	h.respond(w, tracker, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleUpdateTracker(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, UpdateTracker, requestId)
		return
	}

	trackerId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not update tracker", err, UpdateTracker, requestId)
		return
	}

	var req payload.TrackerUpdateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update tracker",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateTracker,
			"request_id", requestId)
		return
	}

	msg, err := req.ToMessage()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update tracker",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	tracker, err := h.tracker.UpdateTracker(r.Context(), caller, trackerId, msg)
	if err != nil {
		h.respondErr(w, "Could not update tracker", err, UpdateTracker, requestId)
		return
	}

	h.respond(w, tracker, http.StatusOK, requestId)
}

func (h *HabitHandler) HandleDeleteTracker(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := h.authorize(r)
	if err != nil {
		h.respondErr(w, "Authentication failed", err, DeleteTracker, requestId)
		return
	}

	trackerId, err := pathID(r)
	if err != nil {
		h.respondErr(w, "Could not delete tracker", err, DeleteTracker, requestId)
		return
	}

	if err := h.tracker.DeleteTracker(r.Context(), caller, trackerId); err != nil {
		h.respondErr(w, "Could not delete tracker", err, DeleteTracker, requestId)
		return
	}

	h.respond(w, Response{Message: "Tracker deleted successfully"}, http.StatusOK, requestId)
}
