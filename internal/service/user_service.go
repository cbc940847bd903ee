package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository описывает требования сервиса к хранилищу пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, rec domain.CreateUserRecord) (*domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, rec domain.UpdateUserRecord) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUsers(ctx context.Context) ([]domain.User, error)
}

// RoleResolver разрешает имя роли в id (в проде — RoleCache поверх Postgres).
type RoleResolver interface {
	FindRoleID(ctx context.Context, name string) (uuid.UUID, error)
}

type UserService struct {
	repo       UserRepository
	roles      RoleResolver
	bcryptCost int
}

func NewUserService(repo UserRepository, roles RoleResolver, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		roles:      roles,
		bcryptCost: bcryptCost,
	}
}

// Create хеширует пароль, разрешает роль и создает пользователя.
// Пароль уходит в bcrypt ровно в том виде, в каком пришел.
func (s *UserService) Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, domain.Internal("internal server error")
	}

	roleID, err := s.roles.FindRoleID(ctx, in.Role)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, domain.CreateUserRecord{
		Name:    in.Name,
		Email:   in.Email,
		Hash:    string(hash),
		Address: in.Address,
		RoleID:  roleID,
	})
}

// Update обновляет только переданные поля.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in *domain.UpdateUser) (*domain.User, error) {
	rec := domain.UpdateUserRecord{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if err != nil {
			return nil, domain.Internal("internal server error")
		}
		h := string(hash)
		rec.Hash = &h
	}

	if in.Role != nil {
		roleID, err := s.roles.FindRoleID(ctx, *in.Role)
		if err != nil {
			return nil, err
		}
		rec.RoleID = &roleID
	}

	return s.repo.UpdateUser(ctx, id, rec)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetUsers(ctx)
}
