package http

import (
	"net/http"

	"home-goal/domain"
	"home-goal/logging"
	"home-goal/metrics"
	"home-goal/service"
)

type TermRecommendationHandler struct {
	service  *service.TermRecommendationService
	logger   logging.Logger
	recorder metrics.Recorder
}

func NewTermRecommendationHandler(
	service *service.TermRecommendationService,
	logger logging.Logger,
	recorder metrics.Recorder,
) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service, logger: logger, recorder: recorder}
}

func (h *TermRecommendationHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var input domain.TermRecommendationInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	result, err := h.service.RecommendTerm(input)
	observeOutcome(h.recorder, "recommend_term", err)
	if err != nil {
		writeCalcError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}
