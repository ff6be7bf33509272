package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/pkg/pagination"
	"gorm.io/gorm"
)

type SleepEventRepository interface {
	Create(ctx context.Context, event *domain.SleepEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepEvent, error)
	Update(ctx context.Context, event *domain.SleepEvent) error
	List(ctx context.Context, childID uuid.UUID, filter domain.SleepEventFilter) ([]domain.SleepEvent, error)
	ListByStartRange(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]domain.SleepEvent, error)
	GetByClientRequestID(ctx context.Context, childID uuid.UUID, clientRequestID string) (*domain.SleepEvent, error)
}

type sleepEventRepository struct {
	db *gorm.DB
}

func NewSleepEventRepository(db *gorm.DB) SleepEventRepository {
	return &sleepEventRepository{db: db}
}

func (r *sleepEventRepository) Create(ctx context.Context, event *domain.SleepEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *sleepEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepEvent, error) {
	var event domain.SleepEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *sleepEventRepository) Update(ctx context.Context, event *domain.SleepEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *sleepEventRepository) List(ctx context.Context, childID uuid.UUID, filter domain.SleepEventFilter) ([]domain.SleepEvent, error) {
	query := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("start_time DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("start_time >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_time <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with start_time < cursor.StartTime
			// or same start_time but id < cursor.ID
			query = query.Where(
				"(start_time < ?) OR (start_time = ? AND id < ?)",
				cursor.StartTime, cursor.StartTime, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var events []domain.SleepEvent
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// ListByStartRange returns events starting within [from, to], oldest
// first, the order the statistics engine expects.
func (r *sleepEventRepository) ListByStartRange(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]domain.SleepEvent, error) {
	var events []domain.SleepEvent
	err := r.db.WithContext(ctx).
		Where("child_id = ? AND start_time >= ? AND start_time <= ?", childID, from, to).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *sleepEventRepository) GetByClientRequestID(ctx context.Context, childID uuid.UUID, clientRequestID string) (*domain.SleepEvent, error) {
	var event domain.SleepEvent
	err := r.db.WithContext(ctx).
		Where("child_id = ? AND client_request_id = ?", childID, clientRequestID).
		First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &event, nil
}
