package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xela07ax/mrp-console/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type fakeCredentials struct {
	users map[string]*domain.CurrentUser
}

func (f *fakeCredentials) GetUserByEmail(_ context.Context, email string) (*domain.CurrentUser, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domain.NotFound("Not Found")
	}
	return u, nil
}

func seededCredentials(t *testing.T) *fakeCredentials {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeCredentials{users: map[string]*domain.CurrentUser{
		"a@b.com": {
			ID:             uuid.New(),
			Name:           "alice.b",
			Email:          "a@b.com",
			HashedPassword: string(hash),
			RoleName:       domain.RoleUser,
		},
	}}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	repo := seededCredentials(t)
	svc := NewAuthService(repo, secret, 5*time.Minute)

	body, err := svc.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, body.Token)

	// Токен подписан нашим секретом и несет наши claims
	var claims domain.Claims
	tok, err := jwt.ParseWithClaims(body.Token, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)
	require.Equal(t, "alice.b", claims.Name)
	require.Equal(t, domain.RoleUser, claims.Roles)
	require.Equal(t, repo.users["a@b.com"].ID.String(), claims.Subject)
	require.WithinDuration(t,
		time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, 10*time.Second)
}

func TestLogin_NoUserOracle(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(seededCredentials(t), []byte("k"), time.Minute)

	// «Нет такого пользователя» и «не тот пароль» отвечают одинаково
	_, errNoUser := svc.Login(context.Background(), "ghost@b.com", "secret1")
	_, errBadPass := svc.Login(context.Background(), "a@b.com", "wrong_pass")

	for _, err := range []error{errNoUser, errBadPass} {
		require.Error(t, err)
		ae := domain.AsAppError(err)
		require.Equal(t, domain.KindUnauthorized, ae.Kind)
		require.Equal(t, "Invalid email or password", ae.Message)
	}
}
