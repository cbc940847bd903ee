package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
)

type MaterialRepository interface {
	CreateMaterialGroup(ctx context.Context, req domain.CreateMaterialGroup) (*domain.MaterialGroup, error)
	GetMaterialGroups(ctx context.Context) ([]domain.MaterialGroup, error)
	GetMaterialGroupByID(ctx context.Context, id uuid.UUID) (*domain.MaterialGroup, error)
	GetSubGroupsByGroupName(ctx context.Context, groupName string) ([]domain.MaterialGroup, error)
	UpdateMaterialGroup(ctx context.Context, id uuid.UUID, req domain.UpdateMaterialGroup) (*domain.MaterialGroup, error)
	DeleteMaterialGroup(ctx context.Context, id uuid.UUID) error
}

type MaterialService struct {
	repo MaterialRepository
}

func NewMaterialService(repo MaterialRepository) *MaterialService {
	return &MaterialService{repo: repo}
}

func (s *MaterialService) CreateGroup(ctx context.Context, req domain.CreateMaterialGroup) (*domain.MaterialGroup, error) {
	return s.repo.CreateMaterialGroup(ctx, req)
}

func (s *MaterialService) ListGroups(ctx context.Context) ([]domain.MaterialGroup, error) {
	return s.repo.GetMaterialGroups(ctx)
}

func (s *MaterialService) GetGroupByID(ctx context.Context, id uuid.UUID) (*domain.MaterialGroup, error) {
	return s.repo.GetMaterialGroupByID(ctx, id)
}

func (s *MaterialService) ListSubGroups(ctx context.Context, groupName string) ([]domain.MaterialGroup, error) {
	return s.repo.GetSubGroupsByGroupName(ctx, groupName)
}

func (s *MaterialService) UpdateGroup(ctx context.Context, id uuid.UUID, req domain.UpdateMaterialGroup) (*domain.MaterialGroup, error) {
	return s.repo.UpdateMaterialGroup(ctx, id, req)
}

func (s *MaterialService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMaterialGroup(ctx, id)
}
