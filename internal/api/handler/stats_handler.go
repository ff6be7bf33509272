package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/langfuse"
	"github.com/mkowalczyk/lullaby/internal/llm"
	"github.com/mkowalczyk/lullaby/internal/service"
	"github.com/mkowalczyk/lullaby/internal/stats"
	"github.com/mkowalczyk/lullaby/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// StatsHandler handles sleep statistics and plan endpoints.
type StatsHandler struct {
	statsService   service.StatsService
	planService    service.PlanService
	langfuseClient langfuse.Client
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(
	statsService service.StatsService,
	planService service.PlanService,
	langfuseClient langfuse.Client,
) *StatsHandler {
	return &StatsHandler{
		statsService:   statsService,
		planService:    planService,
		langfuseClient: langfuseClient,
	}
}

// GetStats handles GET /v1/children/{childId}/sleep/stats
// @Summary Get aggregated sleep statistics
// @Description Aggregate the child's raw events into sleep statistics: night durations, average bedtime and wake time, sleep-onset delays, night wakings, nap totals and emotional-state counts.
// @Tags sleep-stats
// @Produce json
// @Param childId path string true "Child UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param period_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(365)
// @Param stats_from query string false "Only consider events at or after this time (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Success 200 {object} domain.SleepStatsResponse "Aggregated sleep statistics"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Child not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /children/{childId}/sleep/stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childId"))
	if err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	// Parse query parameters
	periodDays := parseIntParam(r, "period_days", service.DefaultStatsPeriodDays)
	if periodDays < 1 || periodDays > 365 {
		problem.BadRequest("period_days must be between 1 and 365").Write(w)
		return
	}

	var statsFrom *time.Time
	if fromStr := r.URL.Query().Get("stats_from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			problem.BadRequest("stats_from must be a valid RFC3339 timestamp").Write(w)
			return
		}
		statsFrom = &parsed
	}

	result, err := h.statsService.Compute(r.Context(), childID, periodDays, statsFrom)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Child not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep statistics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetDaily handles GET /v1/children/{childId}/sleep/daily
// @Summary Get day-bucketed sleep totals
// @Description Bucket night and nap sleep into calendar days. Nights count toward the day the child woke up; naps toward the day they started.
// @Tags sleep-stats
// @Produce json
// @Param childId path string true "Child UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param period_days query integer false "Number of days to analyze" default(7) minimum(1) maximum(365)
// @Param denominator query string false "Average denominator: days with data or the whole period" default(dataDays) Enums(dataDays, period)
// @Success 200 {object} domain.DailySleepResponse "Per-day sleep totals"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Child not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /children/{childId}/sleep/daily [get]
func (h *StatsHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childId"))
	if err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	periodDays := parseIntParam(r, "period_days", service.DefaultDailyPeriodDays)
	if periodDays < 1 || periodDays > 365 {
		problem.BadRequest("period_days must be between 1 and 365").Write(w)
		return
	}

	denominator := stats.Denominator(r.URL.Query().Get("denominator"))
	switch denominator {
	case "", stats.DenominatorDataDays, stats.DenominatorPeriod:
	default:
		problem.BadRequest("denominator must be dataDays or period").Write(w)
		return
	}

	result, err := h.statsService.Daily(r.Context(), childID, periodDays, denominator)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Child not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute daily sleep").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetPlan handles GET /v1/children/{childId}/sleep/plan
// @Summary Get LLM-generated sleep plan
// @Description Generate a personalized, non-medical sleep plan from the child's aggregated statistics.
// @Tags sleep-stats
// @Produce json
// @Param childId path string true "Child UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SleepPlanResponse "Sleep plan with supporting statistics"
// @Failure 404 {object} problem.Problem "Child not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /children/{childId}/sleep/plan [get]
func (h *StatsHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childId"))
	if err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	result, err := h.planService.Generate(r.Context(), childID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Child not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Failed to generate sleep plan from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate sleep plan").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for sleep-plan feedback.
// @Description Request body for submitting feedback on a sleep plan.
type FeedbackRequest struct {
	// Trace ID from the plan response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The schedule worked well for us!"`
}

// PostFeedback handles POST /v1/children/{childId}/sleep/plan/feedback
// @Summary Submit feedback on a sleep plan
// @Description Submit a caregiver rating and optional comment for a previous plan response.
// @Tags sleep-stats
// @Accept json
// @Produce json
// @Param childId path string true "Child UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /children/{childId}/sleep/plan/feedback [post]
func (h *StatsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "childId")); err != nil {
		problem.BadRequest("Invalid child ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	// Validate required fields
	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	if err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "caregiver_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		log.Printf("Failed to record plan feedback score: %v", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
