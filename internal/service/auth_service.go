package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xela07ax/mrp-console/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// CredentialSource описывает требование сервиса аутентификации к хранилищу.
type CredentialSource interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.CurrentUser, error)
}

type AuthService struct {
	repo     CredentialSource
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(repo CredentialSource, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Login проверяет пару email/пароль и выдает подписанный HS256 токен.
// «Нет такого пользователя» и «не сошелся пароль» снаружи неразличимы —
// один и тот же 401 с одним текстом.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthBody, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, domain.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.Unauthorized("Invalid email or password")
	}

	now := time.Now()
	claims := &domain.Claims{
		Name:  user.Name,
		Email: user.Email,
		Roles: user.RoleName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, domain.Internal("internal server error")
	}

	return &domain.AuthBody{Token: signed}, nil
}
