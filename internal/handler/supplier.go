package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/httpx"
)

// SupplierManager — операции над поставщиками, нужные хендлеру.
type SupplierManager interface {
	Create(ctx context.Context, req domain.CreateSupplier) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateSupplier) (*domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SupplierHandler struct {
	service SupplierManager
}

func NewSupplierHandler(service SupplierManager) *SupplierHandler {
	return &SupplierHandler{service: service}
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createSupplierDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	supplier, err := h.service.Create(r.Context(), dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, supplier, "Supplier created successfully")
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, suppliers, "Suppliers found")
}

func (h *SupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	supplier, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, supplier, "Supplier found")
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	var dto updateSupplierDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	supplier, err := h.service.Update(r.Context(), id, dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, supplier, "Supplier updated successfully")
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ae := pathID(r)
	if ae != nil {
		respondErr(w, ae)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, httpx.Null{}, "Supplier deleted successfully")
}
