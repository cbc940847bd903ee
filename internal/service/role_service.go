package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
)

// RoleRepository описывает требования сервиса к хранилищу ролей.
type RoleRepository interface {
	CreateRole(ctx context.Context, req domain.RequestRole) (*domain.Role, error)
	GetRoles(ctx context.Context) ([]domain.Role, error)
	GetRoleByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, req domain.RequestRole) (*domain.Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

// RoleInvalidator сбрасывает кэш разрешения ролей после мутаций.
type RoleInvalidator interface {
	Invalidate(ctx context.Context, names ...string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, ...string) {}

type RoleService struct {
	repo  RoleRepository
	cache RoleInvalidator
}

func NewRoleService(repo RoleRepository, cache RoleInvalidator) *RoleService {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &RoleService{repo: repo, cache: cache}
}

func (s *RoleService) Create(ctx context.Context, req domain.RequestRole) (*domain.Role, error) {
	role, err := s.repo.CreateRole(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, role.Name)
	return role, nil
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.GetRoles(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	return s.repo.GetRoleByID(ctx, id)
}

// Update сбрасывает кэш и по старому, и по новому имени:
// ключи кэша именные, а переименование меняет оба.
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, req domain.RequestRole) (*domain.Role, error) {
	old, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := s.repo.UpdateRole(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, old.Name, role.Name)
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteRole(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, role.Name)
	return nil
}
