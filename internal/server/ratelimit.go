package server

import (
	"net/http"

	"github.com/xela07ax/mrp-console/internal/httpx"
	"golang.org/x/time/rate"
)

// Throttle режет поток запросов общим token-bucket лимитером.
// Вешается на /api/auth: bcrypt дорогой, перебор паролей гасим до него.
func Throttle(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				httpx.JSON(w, http.StatusTooManyRequests, httpx.Null{}, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
