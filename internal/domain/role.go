package domain

import "github.com/google/uuid"

// Role — справочник ролей. Имена Admin/User сидят в seed-миграции,
// но таблица редактируемая (CRUD под Admin).
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type RequestRole struct {
	Name string
}
