package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"home-goal/logging"
	"home-goal/metrics"
)

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// InstrumentMiddleware tags every request with an id, logs it and records
// its latency under route.
func InstrumentMiddleware(
	route string,
	logger logging.Logger,
	recorder metrics.Recorder,
	next http.Handler,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		recorder.ObserveRequest(route, rec.status, elapsed)
		logger.Info("request",
			logging.String("request_id", requestID),
			logging.String("method", r.Method),
			logging.String("route", route),
			logging.Int("status", rec.status),
			logging.Duration("elapsed", elapsed),
		)
	})
}
