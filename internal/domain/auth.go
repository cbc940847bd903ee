package domain

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Имена ролей. Сравнение в Role Gate — строгое, с учетом регистра.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// NormalizeRole приводит произвольное написание ("admin", "ADMIN") к
// каноническому имени роли. Неизвестная роль — второй результат false.
func NormalizeRole(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	switch s {
	case RoleAdmin, RoleUser:
		return s, true
	}
	return "", false
}

// Claims — проверенный payload токена. Живет один запрос, не персистится.
// sub/iat/exp приходят из RegisteredClaims.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Roles string `json:"roles"` // имя роли строкой ("Admin" / "User")
	jwt.RegisteredClaims
}

// AuthInfo — то, что отдает GET /users/info: claims плюс сам токен.
type AuthInfo struct {
	UserInfo Claims `json:"user_info"`
	Token    string `json:"token"`
}

// AuthBody — тело ответа логина.
type AuthBody struct {
	Token string `json:"token"`
}
