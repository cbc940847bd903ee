package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
)

type SupplierRepository interface {
	CreateSupplier(ctx context.Context, req domain.CreateSupplier) (*domain.Supplier, error)
	GetSuppliers(ctx context.Context) ([]domain.Supplier, error)
	GetSupplierByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, req domain.UpdateSupplier) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
}

type SupplierService struct {
	repo SupplierRepository
}

func NewSupplierService(repo SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

func (s *SupplierService) Create(ctx context.Context, req domain.CreateSupplier) (*domain.Supplier, error) {
	return s.repo.CreateSupplier(ctx, req)
}

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.GetSuppliers(ctx)
}

func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	return s.repo.GetSupplierByID(ctx, id)
}

func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateSupplier) (*domain.Supplier, error) {
	return s.repo.UpdateSupplier(ctx, id, req)
}

func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteSupplier(ctx, id)
}
