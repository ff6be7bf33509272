package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/repository"
	"github.com/mkowalczyk/lullaby/internal/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultStatsPeriodDays is the default window for statistics.
	DefaultStatsPeriodDays = 30

	// DefaultDailyPeriodDays is the default window for day-bucketed views.
	DefaultDailyPeriodDays = 7
)

// StatsService runs the aggregation engine over a child's stored events.
type StatsService interface {
	// Compute aggregates statistics for a child over the given window.
	Compute(ctx context.Context, childID uuid.UUID, periodDays int, statsFrom *time.Time) (*domain.SleepStatsResponse, error)
	// Daily produces the day-bucketed aggregation for calendar views.
	Daily(ctx context.Context, childID uuid.UUID, periodDays int, denominator stats.Denominator) (*domain.DailySleepResponse, error)
	// ComputeWindow aggregates statistics for an explicit time range and
	// injected now; plan generation and tests use this directly.
	ComputeWindow(ctx context.Context, childID uuid.UUID, from, now time.Time, statsFrom *time.Time) (*stats.ProcessedSleepStats, error)
}

type statsService struct {
	eventRepo repository.SleepEventRepository
	childRepo repository.ChildRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(eventRepo repository.SleepEventRepository, childRepo repository.ChildRepository) StatsService {
	return &statsService{
		eventRepo: eventRepo,
		childRepo: childRepo,
	}
}

func (s *statsService) Compute(ctx context.Context, childID uuid.UUID, periodDays int, statsFrom *time.Time) (*domain.SleepStatsResponse, error) {
	if periodDays <= 0 {
		periodDays = DefaultStatsPeriodDays
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -periodDays)

	processed, err := s.ComputeWindow(ctx, childID, from, now, statsFrom)
	if err != nil {
		return nil, err
	}

	return &domain.SleepStatsResponse{
		ChildID:    childID,
		PeriodDays: periodDays,
		StatsFrom:  statsFrom,
		Stats:      *processed,
	}, nil
}

func (s *statsService) ComputeWindow(ctx context.Context, childID uuid.UUID, from, now time.Time, statsFrom *time.Time) (*stats.ProcessedSleepStats, error) {
	child, err := s.childRepo.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	tracer := otel.Tracer("lullaby-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.ComputeWindow",
		trace.WithAttributes(
			attribute.String("child.id", childID.String()),
			attribute.String("window.from", from.Format(time.RFC3339)),
			attribute.String("window.to", now.Format(time.RFC3339)),
		),
	)
	defer span.End()

	windowDays := int(now.Sub(from).Hours() / 24)
	if windowDays < 1 {
		windowDays = 1
	}
	span.SetAttributes(
		attribute.Int("window.days", windowDays),
		attribute.String("window.description", fmt.Sprintf("%dd window", windowDays)),
	)

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"child_id":    childID.String(),
		"from":        from.Format(time.RFC3339),
		"to":          now.Format(time.RFC3339),
		"window_days": windowDays,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	events, err := s.eventRepo.ListByStartRange(ctx, childID, from, now)
	if err != nil {
		return nil, err
	}

	// The engine classifies night hours and calendar days on the clock
	// the timestamps carry, so shift everything to the child's timezone.
	loc := child.Location()
	result := stats.ProcessSleepStatistics(
		domain.ToStatsEvents(events, loc),
		stats.Options{StatsFrom: statsFrom},
		now.In(loc),
	)

	span.SetAttributes(attribute.Int("events.count", len(events)))

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &result, nil
}

func (s *statsService) Daily(ctx context.Context, childID uuid.UUID, periodDays int, denominator stats.Denominator) (*domain.DailySleepResponse, error) {
	child, err := s.childRepo.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	if periodDays <= 0 {
		periodDays = DefaultDailyPeriodDays
	}
	if denominator == "" {
		denominator = stats.DenominatorDataDays
	}

	tracer := otel.Tracer("lullaby-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.Daily",
		trace.WithAttributes(
			attribute.String("child.id", childID.String()),
			attribute.Int("period.days", periodDays),
			attribute.String("denominator", string(denominator)),
		),
	)
	defer span.End()

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -periodDays)

	events, err := s.eventRepo.ListByStartRange(ctx, childID, from, now)
	if err != nil {
		return nil, err
	}

	// Day buckets follow the child's calendar, not UTC's.
	loc := child.Location()
	daily := stats.AggregateDailySleep(
		domain.ToStatsEvents(events, loc),
		periodDays,
		stats.DailyOptions{Denominator: denominator},
		now.In(loc),
	)

	return &domain.DailySleepResponse{
		ChildID:     childID,
		Denominator: string(denominator),
		Daily:       daily,
	}, nil
}
