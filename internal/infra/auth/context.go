package auth

import (
	"context"

	"github.com/xela07ax/mrp-console/internal/domain"
)

// Типизированный ключ контекста (избегаем коллизий со строковыми ключами)
type identityKey struct{}

// WithIdentity кладет проверенную личность в контекст запроса.
// Вызывается ровно в одном месте — в auth middleware, и только после
// успешной верификации. При отказе личность в контекст не попадает.
func WithIdentity(ctx context.Context, info domain.AuthInfo) context.Context {
	return context.WithValue(ctx, identityKey{}, info)
}

// IdentityFrom достает личность из контекста. Отсутствие личности
// downstream-слои обязаны трактовать как «не аутентифицирован».
func IdentityFrom(ctx context.Context) (domain.AuthInfo, bool) {
	info, ok := ctx.Value(identityKey{}).(domain.AuthInfo)
	return info, ok
}
