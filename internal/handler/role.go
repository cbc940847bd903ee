package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/httpx"
)

// RoleManager — операции над ролями, нужные хендлеру.
type RoleManager interface {
	Create(ctx context.Context, req domain.RequestRole) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	Update(ctx context.Context, id uuid.UUID, req domain.RequestRole) (*domain.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoleHandler struct {
	service RoleManager
}

func NewRoleHandler(service RoleManager) *RoleHandler {
	return &RoleHandler{service: service}
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto roleDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	role, err := h.service.Create(r.Context(), dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, role, "Role created successfully")
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, roles, "Roles found")
}

func (h *RoleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	role, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, role, "Role found")
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	var dto roleDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	role, err := h.service.Update(r.Context(), id, dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, role, "Role updated successfully")
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, httpx.Null{}, "Role deleted successfully")
}
