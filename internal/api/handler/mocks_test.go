package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/langfuse"
	"github.com/mkowalczyk/lullaby/internal/stats"
)

// MockChildService is a mock implementation of ChildService
type MockChildService struct {
	createFunc  func(ctx context.Context, req *domain.CreateChildRequest) (*domain.Child, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Child, error)
}

func (m *MockChildService) Create(ctx context.Context, req *domain.CreateChildRequest) (*domain.Child, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Child{
		ID:        uuid.New(),
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Timezone:  req.Timezone,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockChildService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Child{
		ID:        id,
		Name:      "Ana",
		BirthDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		Timezone:  "Europe/Madrid",
	}, nil
}

// MockSleepEventService is a mock implementation of SleepEventService
type MockSleepEventService struct {
	createFunc func(ctx context.Context, childID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, bool, error)
	updateFunc func(ctx context.Context, childID uuid.UUID, eventID uuid.UUID, req *domain.UpdateSleepEventRequest) (*domain.SleepEvent, error)
	listFunc   func(ctx context.Context, childID uuid.UUID, filter domain.SleepEventFilter) (*domain.SleepEventListResponse, error)
}

func (m *MockSleepEventService) Create(ctx context.Context, childID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, childID, req)
	}
	return &domain.SleepEvent{
		ID:        uuid.New(),
		ChildID:   childID,
		Type:      req.Type,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedAt: time.Now(),
	}, false, nil
}

func (m *MockSleepEventService) Update(ctx context.Context, childID uuid.UUID, eventID uuid.UUID, req *domain.UpdateSleepEventRequest) (*domain.SleepEvent, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, childID, eventID, req)
	}
	return &domain.SleepEvent{
		ID:        eventID,
		ChildID:   childID,
		Type:      "sleep",
		StartTime: time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockSleepEventService) List(ctx context.Context, childID uuid.UUID, filter domain.SleepEventFilter) (*domain.SleepEventListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, childID, filter)
	}
	return &domain.SleepEventListResponse{
		Data:       []domain.SleepEventResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	computeFunc func(ctx context.Context, childID uuid.UUID, periodDays int, statsFrom *time.Time) (*domain.SleepStatsResponse, error)
	dailyFunc   func(ctx context.Context, childID uuid.UUID, periodDays int, denominator stats.Denominator) (*domain.DailySleepResponse, error)
}

func (m *MockStatsService) Compute(ctx context.Context, childID uuid.UUID, periodDays int, statsFrom *time.Time) (*domain.SleepStatsResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, childID, periodDays, statsFrom)
	}
	return &domain.SleepStatsResponse{
		ChildID:    childID,
		PeriodDays: periodDays,
		StatsFrom:  statsFrom,
	}, nil
}

func (m *MockStatsService) Daily(ctx context.Context, childID uuid.UUID, periodDays int, denominator stats.Denominator) (*domain.DailySleepResponse, error) {
	if m.dailyFunc != nil {
		return m.dailyFunc(ctx, childID, periodDays, denominator)
	}
	return &domain.DailySleepResponse{
		ChildID:     childID,
		Denominator: string(denominator),
	}, nil
}

func (m *MockStatsService) ComputeWindow(ctx context.Context, childID uuid.UUID, from, to time.Time, statsFrom *time.Time) (*stats.ProcessedSleepStats, error) {
	return &stats.ProcessedSleepStats{}, nil
}

// MockPlanService is a mock implementation of PlanService
type MockPlanService struct {
	generateFunc func(ctx context.Context, childID uuid.UUID) (*domain.SleepPlanResponse, error)
}

func (m *MockPlanService) Generate(ctx context.Context, childID uuid.UUID) (*domain.SleepPlanResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, childID)
	}
	return &domain.SleepPlanResponse{
		ChildID: childID,
		Plan: domain.SleepPlanOutput{
			Summary: "Sleep looks consistent.",
		},
	}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled     bool
	scoreInputs []langfuse.ScoreInput
	scoreErr    error
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.scoreErr != nil {
		return m.scoreErr
	}
	m.scoreInputs = append(m.scoreInputs, in)
	return nil
}
