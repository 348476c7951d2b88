package http

import (
	"net/http"

	"home-goal/logging"
	"home-goal/metrics"
)

type RouterDeps struct {
	Goals    *GoalHandler
	Terms    *TermRecommendationHandler
	Limiter  Limiter // nil desactiva el rate limiting
	Logger   logging.Logger
	Recorder metrics.Recorder
	Metrics  http.Handler
}

// NewRouter wires every route behind request instrumentation; calculation
// routes are also rate limited.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	limited := func(route string, h http.HandlerFunc) {
		var handler http.Handler = h
		if deps.Limiter != nil {
			handler = RateLimitMiddleware(deps.Limiter, deps.Logger, deps.Recorder, handler)
		}
		mux.Handle(route, InstrumentMiddleware(route, deps.Logger, deps.Recorder, handler))
	}

	limited("/goal/loan", deps.Goals.CalculateLoan)
	limited("/goal/savings", deps.Goals.SumSavings)
	limited("/goal/projection", deps.Goals.Project)
	limited("/goal/risk", deps.Goals.EvaluateRisk)
	limited("/goal/plan", deps.Goals.Plan)
	limited("/goal/recommend-term", deps.Terms.RecommendTerm)

	mux.Handle("/goal/policy", InstrumentMiddleware("/goal/policy", deps.Logger, deps.Recorder,
		http.HandlerFunc(deps.Goals.GetPolicy)))
	mux.HandleFunc("/healthz", healthz)
	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics)
	}

	return mux
}

func healthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
