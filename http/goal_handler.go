package http

import (
	"fmt"
	"net/http"

	"home-goal/domain"
	"home-goal/logging"
	"home-goal/metrics"
	"home-goal/service"
)

type loanRequest struct {
	domain.GoalInputs
	StressApplied bool `json:"stress_applied"`
}

type savingsRequest struct {
	Selections domain.ChallengeSelections `json:"selections"`
}

type savingsResponse struct {
	Total int64 `json:"total"`
}

// projectionRequest falls back to the policy's default product rate and
// horizon when AnnualReturnRate or MaxYears are omitted.
type projectionRequest struct {
	TargetAmount        int64    `json:"target_amount"`
	StartingCapital     int64    `json:"starting_capital"`
	MonthlyContribution int64    `json:"monthly_contribution"`
	AnnualReturnRate    *float64 `json:"annual_return_rate,omitempty"`
	MaxYears            int      `json:"max_years,omitempty"`
}

type riskRequest struct {
	MonthlyPayment int64    `json:"monthly_payment"`
	MonthlyIncome  int64    `json:"monthly_income"`
	ThresholdRatio *float64 `json:"threshold_ratio,omitempty"`
}

type planRequest struct {
	domain.GoalInputs
	StressApplied bool                       `json:"stress_applied"`
	Selections    domain.ChallengeSelections `json:"selections"`
}

type GoalHandler struct {
	loans    *service.LoanService
	plans    *service.PlanService
	policy   domain.Policy
	logger   logging.Logger
	recorder metrics.Recorder
}

func NewGoalHandler(
	loans *service.LoanService,
	plans *service.PlanService,
	logger logging.Logger,
	recorder metrics.Recorder,
) *GoalHandler {
	return &GoalHandler{
		loans:    loans,
		plans:    plans,
		policy:   plans.Policy(),
		logger:   logger,
		recorder: recorder,
	}
}

func (h *GoalHandler) observe(operation string, err error) {
	observeOutcome(h.recorder, operation, err)
}

func (h *GoalHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req loanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	result, err := h.loans.Calculate(req.GoalInputs, req.StressApplied)
	h.observe("loan", err)
	if err != nil {
		writeCalcError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

func (h *GoalHandler) SumSavings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req savingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	total := service.SumSelectedChallenges(req.Selections, h.policy.Challenges)
	h.observe("savings", nil)

	respondJSON(w, h.logger, http.StatusOK, savingsResponse{Total: total})
}

func (h *GoalHandler) Project(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req projectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	rate := 0.0
	if req.AnnualReturnRate != nil {
		rate = *req.AnnualReturnRate
	} else {
		var err error
		if rate, err = h.policy.ReturnRate(""); err != nil {
			writeCalcError(w, h.logger, err)
			return
		}
	}

	maxYears := req.MaxYears
	if maxYears == 0 {
		maxYears = h.policy.MaxYears
	}
	// El horizonte acotado por la política limita el trabajo por request
	if maxYears > h.policy.MaxYears {
		err := domain.NewInvalidInput("max_years", fmt.Sprintf("no puede superar %d años", h.policy.MaxYears))
		h.observe("projection", err)
		writeCalcError(w, h.logger, err)
		return
	}

	result, err := service.Project(
		req.TargetAmount,
		req.StartingCapital,
		req.MonthlyContribution,
		rate,
		maxYears,
	)
	h.observe("projection", err)
	if err != nil {
		writeCalcError(w, h.logger, err)
		return
	}
	h.recorder.ObserveHorizon(result.AchievementYears, result.Reached)

	respondJSON(w, h.logger, http.StatusOK, result)
}

func (h *GoalHandler) EvaluateRisk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req riskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	threshold := h.policy.RiskThreshold
	if req.ThresholdRatio != nil {
		threshold = *req.ThresholdRatio
	}

	result, err := service.Evaluate(req.MonthlyPayment, req.MonthlyIncome, threshold)
	h.observe("risk", err)
	if err != nil {
		writeCalcError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

func (h *GoalHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req planRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	plan, err := h.plans.Plan(req.GoalInputs, service.PlanOptions{
		StressApplied: req.StressApplied,
		Selections:    req.Selections,
	})
	h.observe("plan", err)
	if err != nil {
		writeCalcError(w, h.logger, err)
		return
	}
	h.recorder.ObserveHorizon(plan.Projection.AchievementYears, plan.Projection.Reached)

	respondJSON(w, h.logger, http.StatusOK, plan)
}

func (h *GoalHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, h.policy)
}
