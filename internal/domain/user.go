package domain

import (
	"time"

	"github.com/google/uuid"
)

// User — представление пользователя наружу. Хеш пароля здесь не живет.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	RoleID    uuid.UUID `json:"role_id"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentUser — внутренняя проекция для логина, вместе с хешем.
// Никогда не сериализуется в ответ.
type CurrentUser struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
	RoleName       string
}

// CreateUser — нормализованные данные на создание (строки уже обрезаны,
// пароль — в исходном виде, он уходит в bcrypt байт-в-байт).
type CreateUser struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string // каноническое имя роли
}

// UpdateUser — частичное обновление: nil-поле не трогаем (COALESCE в SQL).
type UpdateUser struct {
	Name     *string
	Email    *string
	Password *string
	Address  *string
	Role     *string
}

// CreateUserRecord — то, что реально уходит в хранилище:
// пароль уже захеширован, роль уже разрешена в id.
type CreateUserRecord struct {
	Name    string
	Email   string
	Hash    string
	Address string
	RoleID  uuid.UUID
}

// UpdateUserRecord — storage-форма частичного обновления.
type UpdateUserRecord struct {
	Name    *string
	Email   *string
	Hash    *string
	Address *string
	RoleID  *uuid.UUID
}
