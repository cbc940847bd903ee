package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/xela07ax/mrp-console/internal/domain"
)

// CreateUser вставляет пользователя и возвращает его полное представление
// (с join на роль). Id генерирует база.
func (r *Repo) CreateUser(ctx context.Context, rec domain.CreateUserRecord) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, hash, address, role_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, rec.Name, rec.Email, rec.Hash, rec.Address, rec.RoleID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create user: %w", err)
	}
	return r.GetUserByID(ctx, id)
}

// UpdateUser обновляет только переданные поля (COALESCE) и возвращает
// обновленного пользователя. Ноль затронутых строк — NotFound.
func (r *Repo) UpdateUser(ctx context.Context, id uuid.UUID, rec domain.UpdateUserRecord) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    hash = COALESCE($3, hash),
		    address = COALESCE($4, address),
		    role_id = COALESCE($5, role_id),
		    updated_at = now()
		WHERE id = $6`

	ct, err := r.pool.Exec(ctx, query, rec.Name, rec.Email, rec.Hash, rec.Address, rec.RoleID, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to update user: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, domain.NotFound("Not Found")
	}
	return r.GetUserByID(ctx, id)
}

func (r *Repo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete user: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.NotFound("Not Found")
	}
	return nil
}

func (r *Repo) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.address, u.role_id, r.name AS role_name,
		       u.created_at, u.updated_at
		FROM users AS u
		INNER JOIN roles AS r ON u.role_id = r.id
		WHERE u.id = $1`

	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Address, &u.RoleID, &u.RoleName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to get user: %w", err)
	}
	return u, nil
}

func (r *Repo) GetUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.address, u.role_id, r.name AS role_name,
		       u.created_at, u.updated_at
		FROM users AS u
		INNER JOIN roles AS r ON u.role_id = r.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list users: %w", err)
	}
	defer rows.Close()

	var results []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Address, &u.RoleID, &u.RoleName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan user: %w", err)
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

// GetUserByEmail — внутренняя выборка для логина, вместе с хешем пароля.
func (r *Repo) GetUserByEmail(ctx context.Context, email string) (*domain.CurrentUser, error) {
	query := `
		SELECT u.id, u.name, u.email, u.hash, r.name AS role_name
		FROM users AS u
		INNER JOIN roles AS r ON u.role_id = r.id
		WHERE u.email = $1`

	u := &domain.CurrentUser{}
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Not Found")
		}
		return nil, fmt.Errorf("postgres: failed to get user by email: %w", err)
	}
	return u, nil
}
