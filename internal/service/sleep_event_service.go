package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/repository"
	"github.com/mkowalczyk/lullaby/pkg/pagination"
)

type SleepEventService interface {
	Create(ctx context.Context, childID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, bool, error)
	Update(ctx context.Context, childID uuid.UUID, eventID uuid.UUID, req *domain.UpdateSleepEventRequest) (*domain.SleepEvent, error)
	List(ctx context.Context, childID uuid.UUID, filter domain.SleepEventFilter) (*domain.SleepEventListResponse, error)
}

type sleepEventService struct {
	repo      repository.SleepEventRepository
	childRepo repository.ChildRepository
}

func NewSleepEventService(repo repository.SleepEventRepository, childRepo repository.ChildRepository) SleepEventService {
	return &sleepEventService{
		repo:      repo,
		childRepo: childRepo,
	}
}

// Create logs a new event
// Returns (event, isExisting, error) - isExisting is true if returning an existing event due to idempotency
func (s *sleepEventService) Create(ctx context.Context, childID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, bool, error) {
	exists, err := s.childRepo.Exists(ctx, childID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, childID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil // Return existing event
		}
	}

	// Normalize timestamps to UTC for storage
	event := &domain.SleepEvent{
		ChildID:         childID,
		Type:            req.Type,
		StartTime:       req.StartTime.UTC(),
		SleepDelay:      req.SleepDelay,
		DidNotSleep:     req.DidNotSleep,
		Notes:           req.Notes,
		EmotionalState:  req.EmotionalState,
		ClientRequestID: req.ClientRequestID,
	}
	if req.EndTime != nil {
		end := req.EndTime.UTC()
		event.EndTime = &end
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, false, err
	}

	return event, false, nil
}

// Update amends an existing event, typically to add the end time a
// caregiver forgot at logging time.
func (s *sleepEventService) Update(ctx context.Context, childID uuid.UUID, eventID uuid.UUID, req *domain.UpdateSleepEventRequest) (*domain.SleepEvent, error) {
	exists, err := s.childRepo.Exists(ctx, childID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if event.ChildID != childID {
		return nil, domain.ErrNotFound
	}

	// Apply updates
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.StartTime != nil {
		event.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		end := req.EndTime.UTC()
		event.EndTime = &end
	}
	if req.SleepDelay != nil {
		event.SleepDelay = req.SleepDelay
	}
	if req.DidNotSleep != nil {
		event.DidNotSleep = *req.DidNotSleep
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	if req.EmotionalState != nil {
		event.EmotionalState = *req.EmotionalState
	}

	// Validate end > start after applying updates
	if event.EndTime != nil && !event.EndTime.After(event.StartTime) {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *sleepEventService) List(ctx context.Context, childID uuid.UUID, filter domain.SleepEventFilter) (*domain.SleepEventListResponse, error) {
	exists, err := s.childRepo.Exists(ctx, childID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	events, err := s.repo.List(ctx, childID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(events) > limit

	// Trim to actual limit
	if hasMore {
		events = events[:limit]
	}

	// Build response
	response := &domain.SleepEventListResponse{
		Data: make([]domain.SleepEventResponse, len(events)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range events {
		response.Data[i] = events[i].ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(events) > 0 {
		last := events[len(events)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			StartTime: last.StartTime,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
