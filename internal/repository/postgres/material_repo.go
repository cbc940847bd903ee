package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/xela07ax/mrp-console/internal/domain"
)

const materialColumns = `id, name, sub_group_name, created_at, updated_at`

func (r *Repo) CreateMaterialGroup(ctx context.Context, req domain.CreateMaterialGroup) (*domain.MaterialGroup, error) {
	query := `
		INSERT INTO material_group (name, sub_group_name)
		VALUES ($1, $2)
		RETURNING ` + materialColumns

	g := &domain.MaterialGroup{}
	err := r.pool.QueryRow(ctx, query, req.Name, req.SubGroupName).Scan(
		&g.ID, &g.Name, &g.SubGroupName, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create material group: %w", err)
	}
	return g, nil
}

func (r *Repo) GetMaterialGroups(ctx context.Context) ([]domain.MaterialGroup, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+materialColumns+` FROM material_group`)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list material groups: %w", err)
	}
	defer rows.Close()

	var results []domain.MaterialGroup
	for rows.Next() {
		var g domain.MaterialGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.SubGroupName, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan material group: %w", err)
		}
		results = append(results, g)
	}
	return results, rows.Err()
}

func (r *Repo) GetMaterialGroupByID(ctx context.Context, id uuid.UUID) (*domain.MaterialGroup, error) {
	g := &domain.MaterialGroup{}
	err := r.pool.QueryRow(ctx, `SELECT `+materialColumns+` FROM material_group WHERE id = $1`, id).Scan(
		&g.ID, &g.Name, &g.SubGroupName, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to get material group: %w", err)
	}
	return g, nil
}

// GetSubGroupsByGroupName возвращает все под-группы указанной группы.
func (r *Repo) GetSubGroupsByGroupName(ctx context.Context, groupName string) ([]domain.MaterialGroup, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+materialColumns+` FROM material_group WHERE name = $1`, groupName)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list sub groups: %w", err)
	}
	defer rows.Close()

	var results []domain.MaterialGroup
	for rows.Next() {
		var g domain.MaterialGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.SubGroupName, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan material group: %w", err)
		}
		results = append(results, g)
	}
	return results, rows.Err()
}

func (r *Repo) UpdateMaterialGroup(ctx context.Context, id uuid.UUID, req domain.UpdateMaterialGroup) (*domain.MaterialGroup, error) {
	query := `
		UPDATE material_group
		SET name = COALESCE($1, name),
		    sub_group_name = COALESCE($2, sub_group_name),
		    updated_at = now()
		WHERE id = $3
		RETURNING ` + materialColumns

	g := &domain.MaterialGroup{}
	err := r.pool.QueryRow(ctx, query, req.Name, req.SubGroupName, id).Scan(
		&g.ID, &g.Name, &g.SubGroupName, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to update material group: %w", err)
	}
	return g, nil
}

func (r *Repo) DeleteMaterialGroup(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM material_group WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete material group: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.NotFound("Not Found")
	}
	return nil
}
