package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/httpx"
	"github.com/xela07ax/mrp-console/internal/infra/auth"
)

// pathID достает uuid из {id}. Мусор вместо uuid — BadRequest,
// а не 404: роут сматчился, кривой только параметр.
func pathID(r *http.Request) (uuid.UUID, *domain.AppError) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.BadRequest("invalid id")
	}
	return id, nil
}

// selfOrPathID: id из пути, а без него — sub текущего токена.
// Так один хендлер обслуживает и PUT /users/{id}, и self-режим PUT /users/.
func selfOrPathID(r *http.Request) (uuid.UUID, *domain.AppError) {
	if raw := chi.URLParam(r, "id"); raw != "" {
		return pathID(r)
	}

	info, ok := auth.IdentityFrom(r.Context())
	if !ok {
		return uuid.Nil, domain.Unauthorized(auth.MsgNoCredentials)
	}
	id, err := uuid.Parse(info.UserInfo.Subject)
	if err != nil {
		return uuid.Nil, domain.Unauthorized(auth.MsgNoCredentials)
	}
	return id, nil
}

func respondErr(w http.ResponseWriter, ae *domain.AppError) {
	httpx.JSON(w, ae.Kind.HTTPStatus(), httpx.Null{}, ae.Message)
}
