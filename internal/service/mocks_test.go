package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
)

// MockSleepEventRepository is a mock implementation of SleepEventRepository
type MockSleepEventRepository struct {
	events          map[uuid.UUID]*domain.SleepEvent
	clientRequestID map[string]*domain.SleepEvent
	listResult      []domain.SleepEvent
	err             error
}

func NewMockSleepEventRepository() *MockSleepEventRepository {
	return &MockSleepEventRepository{
		events:          make(map[uuid.UUID]*domain.SleepEvent),
		clientRequestID: make(map[string]*domain.SleepEvent),
	}
}

func (m *MockSleepEventRepository) Create(ctx context.Context, event *domain.SleepEvent) error {
	if m.err != nil {
		return m.err
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	m.events[event.ID] = event
	if event.ClientRequestID != nil {
		key := event.ChildID.String() + ":" + *event.ClientRequestID
		m.clientRequestID[key] = event
	}
	return nil
}

func (m *MockSleepEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	event, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (m *MockSleepEventRepository) Update(ctx context.Context, event *domain.SleepEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events[event.ID] = event
	return nil
}

func (m *MockSleepEventRepository) List(ctx context.Context, childID uuid.UUID, filter domain.SleepEventFilter) ([]domain.SleepEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepEvent, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepEvent
	for _, event := range m.events {
		if event.ChildID == childID {
			result = append(result, *event)
		}
	}
	return result, nil
}

func (m *MockSleepEventRepository) ListByStartRange(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]domain.SleepEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepEvent
	for _, event := range m.events {
		if event.ChildID == childID && !event.StartTime.Before(from) && !event.StartTime.After(to) {
			result = append(result, *event)
		}
	}
	return result, nil
}

func (m *MockSleepEventRepository) GetByClientRequestID(ctx context.Context, childID uuid.UUID, clientRequestID string) (*domain.SleepEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := childID.String() + ":" + clientRequestID
	event, ok := m.clientRequestID[key]
	if !ok {
		return nil, nil
	}
	return event, nil
}

// MockChildRepository is a mock implementation of ChildRepository
type MockChildRepository struct {
	children map[uuid.UUID]*domain.Child
	err      error
}

func NewMockChildRepository() *MockChildRepository {
	return &MockChildRepository{
		children: make(map[uuid.UUID]*domain.Child),
	}
}

func (m *MockChildRepository) Create(ctx context.Context, child *domain.Child) error {
	if m.err != nil {
		return m.err
	}
	if child.ID == uuid.Nil {
		child.ID = uuid.New()
	}
	m.children[child.ID] = child
	return nil
}

func (m *MockChildRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error) {
	if m.err != nil {
		return nil, m.err
	}
	child, ok := m.children[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return child, nil
}

func (m *MockChildRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.children[id]
	return ok, nil
}

func (m *MockChildRepository) SetError(err error) {
	m.err = err
}

// MockPlanLLM is a mock implementation of llm.PlanLLM
type MockPlanLLM struct {
	output      *domain.SleepPlanOutput
	err         error
	lastContext *domain.PlanContext
}

func (m *MockPlanLLM) GeneratePlan(ctx context.Context, planCtx *domain.PlanContext) (*domain.SleepPlanOutput, error) {
	m.lastContext = planCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}
