package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/llm"
	"github.com/mkowalczyk/lullaby/internal/repository"
	"github.com/mkowalczyk/lullaby/internal/stats"
)

// PlanWindowDays is the window of events a sleep plan is generated from.
const PlanWindowDays = 14

// PlanService generates LLM-backed sleep plans.
type PlanService interface {
	// Generate creates a sleep plan for a child.
	Generate(ctx context.Context, childID uuid.UUID) (*domain.SleepPlanResponse, error)
}

type planService struct {
	statsService StatsService
	llmClient    llm.PlanLLM
	childRepo    repository.ChildRepository
}

// NewPlanService creates a new PlanService.
func NewPlanService(
	statsService StatsService,
	llmClient llm.PlanLLM,
	childRepo repository.ChildRepository,
) PlanService {
	return &planService{
		statsService: statsService,
		llmClient:    llmClient,
		childRepo:    childRepo,
	}
}

func (s *planService) Generate(ctx context.Context, childID uuid.UUID) (*domain.SleepPlanResponse, error) {
	// Validate child exists and fetch it for the age
	child, err := s.childRepo.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// Aggregate statistics over the plan window
	from := now.AddDate(0, 0, -PlanWindowDays)
	processed, err := s.statsService.ComputeWindow(ctx, childID, from, now, nil)
	if err != nil {
		return nil, err
	}

	// Day-bucketed totals for the same window
	daily, err := s.statsService.Daily(ctx, childID, PlanWindowDays, stats.DenominatorDataDays)
	if err != nil {
		return nil, err
	}

	// Build plan context for LLM
	planCtx := &domain.PlanContext{
		ChildAgeMonths: child.AgeMonths(now),
		Stats:          *processed,
		Daily:          daily.Daily,
	}

	// Generate LLM plan
	llmOutput, err := s.llmClient.GeneratePlan(ctx, planCtx)
	if err != nil {
		return nil, err
	}

	return &domain.SleepPlanResponse{
		ChildID: childID,
		Stats:   *processed,
		Plan:    *llmOutput,
	}, nil
}
