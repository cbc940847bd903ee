package handler

import (
	"context"
	"net/http"

	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/httpx"
)

// Authenticator — то, что auth-хендлеру нужно от сервиса.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.AuthBody, error)
}

// UserCreator регистрирует нового пользователя.
type UserCreator interface {
	Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error)
}

type AuthHandler struct {
	auth  Authenticator
	users UserCreator
}

func NewAuthHandler(auth Authenticator, users UserCreator) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Login — POST /api/auth/login. Успех отвечает 201, как и регистрация.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var dto loginDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	body, err := h.auth.Login(r.Context(), *dto.Email, *dto.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, body, "Logged in successful")
}

// Register — POST /api/auth/register. Открытый роут: роль из тела
// учитывается, но нераспознанная откатывается в User (см. dto).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var dto createUserDto
	if ae := httpx.DecodeValid(r, &dto); ae != nil {
		respondErr(w, ae)
		return
	}

	user, err := h.users.Create(r.Context(), dto.toModel())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, user, "User created successfully")
}
