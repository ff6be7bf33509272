package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"gorm.io/gorm"
)

type ChildRepository interface {
	Create(ctx context.Context, child *domain.Child) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Create(ctx context.Context, child *domain.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error) {
	var child domain.Child
	err := r.db.WithContext(ctx).First(&child, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Child{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
