package infra

// Ключи и каналы Redis собраны в одном месте, чтобы инстансы
// не разъезжались в написании.
const (
	// RedisKeyRolePrefix + имя роли -> uuid роли (read-through кэш)
	RedisKeyRolePrefix = "mrp:role:"

	// RedisChanRoleUpdate — широковещательный сигнал "roles изменились"
	RedisChanRoleUpdate = "mrp:signals:role_update"
)
