package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/xela07ax/mrp-console/internal/domain"
	"go.uber.org/zap"
)

// fakeValidator отдает заранее заданные claims, не трогая криптографию.
type fakeValidator struct {
	claims *domain.Claims
}

func (f *fakeValidator) VerifyToken(raw string) (*domain.Claims, error) {
	if f.claims == nil {
		return nil, ErrInvalidToken
	}
	return f.claims, nil
}

func adminClaims() *domain.Claims {
	return &domain.Claims{
		Name:  "root_admin",
		Roles: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "8d7f2c9e-0000-0000-0000-0000000000aa",
		},
	}
}

type envelope struct {
	Rslt struct {
		Data json.RawMessage `json:"data"`
	} `json:"rslt"`
	StatusMessage string `json:"status_message"`
	StatusCode    int    `json:"status_code"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(&fakeValidator{claims: adminClaims()}, zap.NewNop())
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Equal(t, MsgNoCredentials, env.StatusMessage)
	require.JSONEq(t, `{}`, string(env.Rslt.Data))
}

func TestMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(&fakeValidator{claims: nil}, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	// Тот же текст, что и при отсутствии заголовка: наружу не различаем
	require.Equal(t, MsgNoCredentials, decodeEnvelope(t, rec).StatusMessage)
}

func TestMiddleware_AttachesIdentity(t *testing.T) {
	t.Parallel()

	var got domain.AuthInfo
	var found bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	mw := NewMiddleware(&fakeValidator{claims: adminClaims()}, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	mw(inner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	require.Equal(t, "root_admin", got.UserInfo.Name)
	require.Equal(t, domain.RoleAdmin, got.UserInfo.Roles)
	require.Equal(t, "tok-123", got.Token)
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	RequireRoles(domain.RoleAdmin)(okHandler()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, MsgNoPermission, decodeEnvelope(t, rec).StatusMessage)
}

func TestRequireRoles_EmptySetDeniesAdmin(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(WithIdentity(req.Context(), domain.AuthInfo{UserInfo: *adminClaims()}))
	rec := httptest.NewRecorder()
	RequireRoles()(okHandler()).ServeHTTP(rec, req)

	// Пустой набор ролей — fail-closed, даже для Admin
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_UserOnAdminRoute(t *testing.T) {
	t.Parallel()

	claims := adminClaims()
	claims.Roles = domain.RoleUser
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(WithIdentity(req.Context(), domain.AuthInfo{UserInfo: *claims}))
	rec := httptest.NewRecorder()
	RequireRoles(domain.RoleAdmin)(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, MsgNoPermission, decodeEnvelope(t, rec).StatusMessage)
}

func TestRequireRoles_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	claims := adminClaims()
	claims.Roles = "admin" // регистр не совпал — не пускаем
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(WithIdentity(req.Context(), domain.AuthInfo{UserInfo: *claims}))
	rec := httptest.NewRecorder()
	RequireRoles(domain.RoleAdmin)(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_Allows(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(WithIdentity(req.Context(), domain.AuthInfo{UserInfo: *adminClaims()}))
	rec := httptest.NewRecorder()
	RequireRoles(domain.RoleAdmin, domain.RoleUser)(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
