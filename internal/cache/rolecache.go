package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/xela07ax/mrp-console/internal/infra"
	"go.uber.org/zap"
)

// RoleSource — источник правды для соответствия имя роли -> id (Postgres).
type RoleSource interface {
	FindRoleID(ctx context.Context, name string) (uuid.UUID, error)
}

// RoleCache — read-through кэш разрешения ролей поверх Redis.
// Redis здесь необязательный ускоритель: все обращения идут через
// предохранитель, и лежащий Redis просто переводит чтения напрямую в базу,
// не роняя создание пользователей.
type RoleCache struct {
	rdb    *redis.Client
	src    RoleSource
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
	ttl    time.Duration
}

func NewRoleCache(rdb *redis.Client, src RoleSource, logger *zap.Logger) *RoleCache {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "role-cache-redis",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     30 * time.Second, // время, через которое CB попробует "закрыться"
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &RoleCache{
		rdb:    rdb,
		src:    src,
		cb:     cb,
		logger: logger.Named("role-cache"),
		ttl:    10 * time.Minute,
	}
}

// FindRoleID реализует RoleSource: сначала Redis, потом база,
// с best-effort прогревом кэша.
func (c *RoleCache) FindRoleID(ctx context.Context, name string) (uuid.UUID, error) {
	key := infra.RedisKeyRolePrefix + name

	if v, err := c.cb.Execute(func() (interface{}, error) {
		return c.rdb.Get(ctx, key).Result()
	}); err == nil {
		if id, perr := uuid.Parse(v.(string)); perr == nil {
			return id, nil
		}
		// битое значение в кэше — игнорируем и идем в базу
	}

	id, err := c.src.FindRoleID(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.rdb.Set(ctx, key, id.String(), c.ttl).Err()
	}); err != nil {
		c.logger.Warn("cache warm failed", zap.String("role", name), zap.Error(err))
	}
	return id, nil
}

// Invalidate сбрасывает ключи измененных ролей и шлет широковещательный
// сигнал: другие инстансы по нему чистят свое локальное состояние.
// Best-effort: сбой Redis логируется, мутация роли от него не зависит.
func (c *RoleCache) Invalidate(ctx context.Context, names ...string) {
	if len(names) == 0 {
		return
	}
	keys := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, infra.RedisKeyRolePrefix+n)
	}

	if _, err := c.cb.Execute(func() (interface{}, error) {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			return nil, err
		}
		return nil, c.rdb.Publish(ctx, infra.RedisChanRoleUpdate, "refresh").Err()
	}); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Strings("roles", names), zap.Error(err))
	}
}
