package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xela07ax/mrp-console/internal/domain"
)

// TokenValidator — интерфейс проверки bearer-токена.
// Отдельный интерфейс, чтобы в тестах подставлять фейк.
type TokenValidator interface {
	VerifyToken(raw string) (*domain.Claims, error)
}

// ErrInvalidToken — единственная ошибка, которую возвращает верификатор.
// Подпись, срок, битый payload — все схлопывается сюда, чтобы не давать
// oracle на перебор токенов.
var ErrInvalidToken = errors.New("invalid token")

// HSValidator проверяет JWT, подписанный симметричным ключом HS256.
type HSValidator struct {
	secret []byte
}

func NewHSValidator(secret []byte) *HSValidator {
	return &HSValidator{secret: secret}
}

// VerifyToken реализует TokenValidator. Вход — сырое значение заголовка
// Authorization; без префикса "Bearer " это сразу отказ.
// Чистая функция от заголовка, секрета и часов — побочных эффектов нет.
func (v *HSValidator) VerifyToken(raw string) (*domain.Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(raw, prefix) {
		return nil, ErrInvalidToken
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(raw, prefix))

	token, err := jwt.ParseWithClaims(tokenStr, &domain.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
