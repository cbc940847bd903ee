package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/xela07ax/mrp-console/internal/domain"
)

const supplierColumns = `id, name, email, phone, address, created_at, updated_at`

func (r *Repo) CreateSupplier(ctx context.Context, req domain.CreateSupplier) (*domain.Supplier, error) {
	query := `
		INSERT INTO supplier (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + supplierColumns

	s := &domain.Supplier{}
	err := r.pool.QueryRow(ctx, query, req.Name, req.Email, req.Phone, req.Address).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create supplier: %w", err)
	}
	return s, nil
}

func (r *Repo) GetSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+supplierColumns+` FROM supplier`)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var results []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan supplier: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (r *Repo) GetSupplierByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	s := &domain.Supplier{}
	err := r.pool.QueryRow(ctx, `SELECT `+supplierColumns+` FROM supplier WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to get supplier: %w", err)
	}
	return s, nil
}

func (r *Repo) UpdateSupplier(ctx context.Context, id uuid.UUID, req domain.UpdateSupplier) (*domain.Supplier, error) {
	query := `
		UPDATE supplier
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    phone = COALESCE($3, phone),
		    address = COALESCE($4, address),
		    updated_at = now()
		WHERE id = $5
		RETURNING ` + supplierColumns

	s := &domain.Supplier{}
	err := r.pool.QueryRow(ctx, query, req.Name, req.Email, req.Phone, req.Address, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to update supplier: %w", err)
	}
	return s, nil
}

func (r *Repo) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM supplier WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete supplier: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.NotFound("Not Found")
	}
	return nil
}
