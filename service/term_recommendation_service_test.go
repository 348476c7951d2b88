package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-goal/domain"
)

func newTermService() *TermRecommendationService {
	policy := DefaultPolicy()
	return NewTermRecommendationService(NewLoanService(policy, nil), policy, nil)
}

func TestRecommendTerm_ShortestWithinThreshold(t *testing.T) {
	goal := sampleGoal()
	goal.MonthlyIncome = 8_000_000

	result, err := newTermService().RecommendTerm(domain.TermRecommendationInput{
		Goal:     goal,
		MinYears: 10,
		MaxYears: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, 21, result.RecommendedYears)
	require.Len(t, result.Options, 31)
	assert.Equal(t, 10, result.Options[0].RepaymentYears)
	assert.True(t, result.Options[10].OverThreshold)
	assert.False(t, result.Options[11].OverThreshold)
}

func TestRecommendTerm_StressNeedsLongerTerm(t *testing.T) {
	goal := sampleGoal()
	goal.MonthlyIncome = 8_000_000

	result, err := newTermService().RecommendTerm(domain.TermRecommendationInput{
		Goal:          goal,
		MinYears:      10,
		MaxYears:      40,
		StressApplied: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 28, result.RecommendedYears)
}

func TestRecommendTerm_NoneQualifies(t *testing.T) {
	result, err := newTermService().RecommendTerm(domain.TermRecommendationInput{
		Goal:     sampleGoal(),
		MinYears: 20,
		MaxYears: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.RecommendedYears)
	assert.Len(t, result.Options, 31)
}

func TestRecommendTerm_InvalidRanges(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		income   int64
	}{
		{"zero min", 0, 10, 1},
		{"min above max", 20, 10, 1},
		{"max above limit", 10, MaxRepaymentYears + 1, 1},
		{"range too wide", 1, MaxTermRangeYears + 2, 1},
		{"no income", 10, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := sampleGoal()
			goal.MonthlyIncome = tt.income

			_, err := newTermService().RecommendTerm(domain.TermRecommendationInput{
				Goal:     goal,
				MinYears: tt.min,
				MaxYears: tt.max,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
