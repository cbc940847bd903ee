package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/httpx"
)

// MaterialManager — операции над группами материалов, нужные хендлеру.
type MaterialManager interface {
	CreateGroup(ctx context.Context, req domain.CreateMaterialGroup) (*domain.MaterialGroup, error)
	ListGroups(ctx context.Context) ([]domain.MaterialGroup, error)
	GetGroupByID(ctx context.Context, id uuid.UUID) (*domain.MaterialGroup, error)
	ListSubGroups(ctx context.Context, groupName string) ([]domain.MaterialGroup, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, req domain.UpdateMaterialGroup) (*domain.MaterialGroup, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}

type MaterialHandler struct {
	service MaterialManager
}

func NewMaterialHandler(service MaterialManager) *MaterialHandler {
	return &MaterialHandler{service: service}
}

func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createMaterialGroupDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	group, err := h.service.CreateGroup(r.Context(), dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, group, "Material group created successfully")
}

func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGroups(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, groups, "Material groups found")
}

func (h *MaterialHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	group, err := h.service.GetGroupByID(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, group, "Material group found")
}

// ListSubGroups — GET /api/materials/groups/sub/{name}:
// все записи с данным именем группы, по одной на подгруппу.
func (h *MaterialHandler) ListSubGroups(w http.ResponseWriter, r *http.Request) {
	// Имя группы может содержать пробел — в пути он приходит как %20
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		respondErr(w, domain.BadRequest("invalid group name"))
		return
	}

	groups, err := h.service.ListSubGroups(r.Context(), name)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, groups, "Material groups found")
}

func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	var dto updateMaterialGroupDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	group, err := h.service.UpdateGroup(r.Context(), id, dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, group, "Material group updated successfully")
}

func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	if err := h.service.DeleteGroup(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, httpx.Null{}, "Material group deleted successfully")
}
