package auth

import (
	"net/http"
	"strings"

	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/httpx"
	"go.uber.org/zap"
)

// Тексты ответов гейтов — wire-контракт.
const (
	MsgNoCredentials = "no credentials or invalid credentials"
	MsgNoPermission  = "no permission"
)

// NewMiddleware возвращает middleware проверки bearer-токена.
// Нет заголовка и невалидный токен дают один и тот же ответ 401 —
// наружу не различаем, что именно не так.
func NewMiddleware(v TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httpx.JSON(w, http.StatusUnauthorized, httpx.Null{}, MsgNoCredentials)
				return
			}

			claims, err := v.VerifyToken(authHeader)
			if err != nil {
				logger.Warn("auth failure", zap.Error(err))
				httpx.JSON(w, http.StatusUnauthorized, httpx.Null{}, MsgNoCredentials)
				return
			}

			// Прокидываем личность в контекст запроса
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			ctx := WithIdentity(r.Context(), makeAuthInfo(claims, token))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles — ролевой гейт. Сравнение строгое, по точному имени роли.
// Пустой набор ролей запрещает всех, включая Admin: fail-closed,
// а не fail-open. Нет личности в контексте — тоже 403.
// Работает и на группе роутов (r.Use), и на отдельном роуте (r.With);
// результат одинаковый.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info, ok := IdentityFrom(r.Context())
			if !ok || !roleAllowed(roles, info.UserInfo.Roles) {
				httpx.JSON(w, http.StatusForbidden, httpx.Null{}, MsgNoPermission)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func makeAuthInfo(claims *domain.Claims, token string) domain.AuthInfo {
	return domain.AuthInfo{UserInfo: *claims, Token: token}
}

func roleAllowed(required []string, role string) bool {
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
