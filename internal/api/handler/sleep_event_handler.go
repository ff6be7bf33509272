package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/api/validation"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/service"
	"github.com/mkowalczyk/lullaby/pkg/problem"
)

type SleepEventHandler struct {
	service service.SleepEventService
}

func NewSleepEventHandler(service service.SleepEventService) *SleepEventHandler {
	return &SleepEventHandler{service: service}
}

// Create handles POST /v1/children/{childId}/events
// @Summary Record a sleep event
// @Description Log a sleep, nap, wake, night-waking or feeding event. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags sleep-events
// @Accept json
// @Produce json
// @Param childId path string true "Child UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSleepEventRequest true "Sleep event data"
// @Success 201 {object} domain.SleepEventResponse "New event created"
// @Success 200 {object} domain.SleepEventResponse "Existing event returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Child not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /children/{childId}/events [post]
func (h *SleepEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childId"))
	if err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	var req domain.CreateSleepEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, isExisting, err := h.service.Create(r.Context(), childID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Child not found").Write(w)
			return
		}
		problem.InternalError("Failed to create sleep event").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK) // Return 200 for idempotent duplicate
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(event.ToResponse())
}

// Update handles PATCH /v1/children/{childId}/events/{eventId}
// @Summary Amend a sleep event
// @Description Partially update an event, typically to add the wake-up time the next morning. Only provided fields change.
// @Tags sleep-events
// @Accept json
// @Produce json
// @Param childId path string true "Child UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param eventId path string true "Event UUID" format(uuid) example(660e8400-e29b-41d4-a716-446655440001)
// @Param request body domain.UpdateSleepEventRequest true "Fields to update"
// @Success 200 {object} domain.SleepEventResponse "Updated event"
// @Failure 400 {object} problem.Problem "Invalid request body or end time not after start time"
// @Failure 404 {object} problem.Problem "Child or event not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /children/{childId}/events/{eventId} [patch]
func (h *SleepEventHandler) Update(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childId"))
	if err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "eventId"))
	if err != nil {
		problem.BadRequest("Invalid event ID format").Write(w)
		return
	}

	var req domain.UpdateSleepEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, err := h.service.Update(r.Context(), childID, eventID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Event not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("End time must be after start time").Write(w)
			return
		}
		problem.InternalError("Failed to update sleep event").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event.ToResponse())
}

// List handles GET /v1/children/{childId}/events
// @Summary List sleep events
// @Description Fetch paginated event history. Filter by date range. Results sorted by start_time descending (newest first).
// @Tags sleep-events
// @Produce json
// @Param childId path string true "Child UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339, UTC recommended for consistent filtering)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339, UTC recommended for consistent filtering)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepEventListResponse "Sleep events with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Child not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /children/{childId}/events [get]
func (h *SleepEventHandler) List(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childId"))
	if err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), childID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Child not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep events").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.SleepEventFilter, []problem.FieldError) {
	var filter domain.SleepEventFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
