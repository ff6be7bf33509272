package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/repository"
)

type ChildService interface {
	Create(ctx context.Context, req *domain.CreateChildRequest) (*domain.Child, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error)
}

type childService struct {
	repo repository.ChildRepository
}

func NewChildService(repo repository.ChildRepository) ChildService {
	return &childService{repo: repo}
}

func (s *childService) Create(ctx context.Context, req *domain.CreateChildRequest) (*domain.Child, error) {
	child := &domain.Child{
		ID:        uuid.New(),
		Name:      req.Name,
		BirthDate: req.BirthDate.UTC(),
		Timezone:  req.Timezone,
	}

	if err := s.repo.Create(ctx, child); err != nil {
		return nil, err
	}

	return child, nil
}

func (s *childService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error) {
	return s.repo.GetByID(ctx, id)
}
