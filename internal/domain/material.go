package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaterialGroup — группа материалов с под-группой.
type MaterialGroup struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SubGroupName string    `json:"sub_group_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateMaterialGroup struct {
	Name         string
	SubGroupName string
}

type UpdateMaterialGroup struct {
	Name         *string
	SubGroupName *string
}
