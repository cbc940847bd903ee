package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/httpx"
	"github.com/xela07ax/mrp-console/internal/infra/auth"
)

// UserManager — операции над пользователями, нужные хендлеру.
type UserManager interface {
	Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, in *domain.UpdateUser) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type UserHandler struct {
	service UserManager
}

func NewUserHandler(service UserManager) *UserHandler {
	return &UserHandler{service: service}
}

// Create — POST /api/users/.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createUserDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	user, err := h.service.Create(r.Context(), dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, user, "User created successfully")
}

// Update обслуживает и PUT /api/users/{id} (Admin), и PUT /api/users/
// (self: id берется из токена).
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ae := selfOrPathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	var dto updateUserDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	user, err := h.service.Update(r.Context(), id, dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, user, "User updated successfully")
}

// Delete — DELETE /api/users/{id} (Admin) и DELETE /api/users/ (self).
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ae := selfOrPathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, httpx.Null{}, "User deleted successfully")
}

// GetByID — GET /api/users/{id}. Только Admin.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, user, "User found")
}

// List — GET /api/users/. Только Admin.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, users, "Users found")
}

// Info — GET /api/users/info: личность и токен текущего запроса,
// ровно то, что положил auth middleware. В базу не ходим.
func (h *UserHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.JSON(w, http.StatusUnauthorized, httpx.Null{}, auth.MsgNoCredentials)
		return
	}

	httpx.JSON(w, http.StatusOK, info, "Get user info successfully")
}
