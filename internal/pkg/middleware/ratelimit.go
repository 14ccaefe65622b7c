package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "gobeer/internal/errors"
	"gobeer/internal/pkg/cache"
	"gobeer/internal/pkg/logger"
)

// RateLimiter limita cada IP a limit requisições por janela fixa de duration.
// Se o cache falhar a requisição segue sem limite.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip

			count, err := client.Incr(r.Context(), key, duration)
			if err != nil {
				log.Warn("Falha ao consultar o rate limit, liberando requisição.", map[string]interface{}{"ip": ip, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				writeError(w, apperror.NewTooManyRequestsError("Muitas requisições. Tente novamente mais tarde."))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
