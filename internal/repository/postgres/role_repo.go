package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/xela07ax/mrp-console/internal/domain"
)

func (r *Repo) CreateRole(ctx context.Context, req domain.RequestRole) (*domain.Role, error) {
	query := `INSERT INTO roles (name) VALUES ($1) RETURNING id, name`

	role := &domain.Role{}
	if err := r.pool.QueryRow(ctx, query, req.Name).Scan(&role.ID, &role.Name); err != nil {
		return nil, fmt.Errorf("postgres: failed to create role: %w", err)
	}
	return role, nil
}

func (r *Repo) GetRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM roles`)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list roles: %w", err)
	}
	defer rows.Close()

	var results []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan role: %w", err)
		}
		results = append(results, role)
	}
	return results, rows.Err()
}

func (r *Repo) GetRoleByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	role := &domain.Role{}
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to get role: %w", err)
	}
	return role, nil
}

func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, req domain.RequestRole) (*domain.Role, error) {
	query := `
		UPDATE roles
		SET name = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING id, name`

	role := &domain.Role{}
	err := r.pool.QueryRow(ctx, query, req.Name, id).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to update role: %w", err)
	}
	return role, nil
}

func (r *Repo) DeleteRole(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete role: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.NotFound("Not Found")
	}
	return nil
}

// FindRoleID разрешает имя роли в id. Горячий путь создания/обновления
// пользователей; поверх него сидит redis-кэш.
func (r *Repo) FindRoleID(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, domain.NotFound("Not Found")
		}
		return uuid.Nil, fmt.Errorf("postgres: failed to find role: %w", err)
	}
	return id, nil
}
