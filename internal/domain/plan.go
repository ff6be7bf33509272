package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/stats"
)

// SleepStatsResponse is the response for the stats endpoint.
// @Description Aggregated sleep statistics for a child over a period.
type SleepStatsResponse struct {
	// Child identifier
	ChildID uuid.UUID `json:"child_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Days covered by the statistics window
	PeriodDays int `json:"period_days" example:"30"`
	// Optional explicit cutoff applied before aggregation
	StatsFrom *time.Time `json:"stats_from,omitempty" example:"2024-01-01T00:00:00Z"`
	// The aggregated statistics record
	Stats stats.ProcessedSleepStats `json:"stats"`
}

// DailySleepResponse is the response for the day-bucketed endpoint.
// @Description Per-day sleep totals for calendar and trend views.
type DailySleepResponse struct {
	// Child identifier
	ChildID uuid.UUID `json:"child_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Denominator used for the averages
	Denominator string `json:"denominator" example:"dataDays"`
	// Day-bucketed aggregation
	Daily stats.DailyAggregatedSleepStats `json:"daily"`
}

// PlanScheduleEntry is one line of the recommended daily routine.
// @Description Single entry of a recommended daily schedule.
type PlanScheduleEntry struct {
	// Clock time in HH:MM
	Time string `json:"time" example:"19:45"`
	// What the caregiver should do
	Activity string `json:"activity" example:"Start the wind-down routine: dim lights, quiet play"`
}

// SleepPlanOutput contains the structured output from the LLM.
// @Description LLM-generated sleep plan.
type SleepPlanOutput struct {
	// Summary of the child's current sleep situation (2-3 sentences)
	Summary string `json:"summary" example:"Ana sleeps about 10.4 hours per night with a consistent bedtime..."`
	// Recommended daily schedule
	Schedule []PlanScheduleEntry `json:"schedule"`
	// Behavioral recommendations (3-6 items)
	Recommendations []string `json:"recommendations" example:"[\"Keep the bedtime within a 20 minute window\"]"`
	// Gentle guidance for night wakings (2-4 items)
	NightWakingGuidance []string `json:"night_waking_guidance" example:"[\"Wait a minute before intervening to let her resettle\"]"`
}

// PlanContext is the context object sent to the LLM.
// @Description Context data for sleep-plan generation.
type PlanContext struct {
	// Child's age in months
	ChildAgeMonths int `json:"child_age_months" example:"14"`
	// Aggregated statistics for the plan window
	Stats stats.ProcessedSleepStats `json:"stats"`
	// Day-bucketed totals for the same window
	Daily stats.DailyAggregatedSleepStats `json:"daily"`
}

// SleepPlanResponse is the response for the plan endpoint.
// @Description Complete sleep-plan response.
type SleepPlanResponse struct {
	// Child identifier
	ChildID uuid.UUID `json:"child_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Statistics the plan was generated from
	Stats stats.ProcessedSleepStats `json:"stats"`
	// LLM-generated plan
	Plan SleepPlanOutput `json:"plan"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
