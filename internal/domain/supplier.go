package domain

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateSupplier struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type UpdateSupplier struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}
