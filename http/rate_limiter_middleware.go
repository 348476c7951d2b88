package http

import (
	"net"
	"net/http"

	"home-goal/logging"
	"home-goal/metrics"
)

// RateLimitMiddleware rejects clients over their limit with 429. A limiter
// backend failure lets the request through.
func RateLimitMiddleware(
	limiter Limiter,
	logger logging.Logger,
	recorder metrics.Recorder,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		allowed, err := limiter.Allow(r.Context(), ip)
		if err != nil {
			logger.Warn("rate limiter unavailable", logging.Err(err), logging.String("client", ip))
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			recorder.ObserveRateLimited(r.URL.Path)
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
