package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-goal/domain"
)

func TestEvaluate(t *testing.T) {
	risk, err := Evaluate(2_264_007, 4_000_000, DefaultRiskThreshold)
	require.NoError(t, err)

	assert.InDelta(t, 0.566, risk.PaymentToIncomeRatio, 1e-3)
	assert.True(t, risk.OverThreshold)
	assert.Equal(t, DefaultRiskThreshold, risk.Threshold)
}

func TestEvaluate_AtThresholdIsNotOver(t *testing.T) {
	risk, err := Evaluate(35, 100, 0.35)
	require.NoError(t, err)
	assert.False(t, risk.OverThreshold)
}

func TestEvaluate_ZeroIncome(t *testing.T) {
	_, err := Evaluate(1_000, 0, DefaultRiskThreshold)
	require.Error(t, err)

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "monthly_income", invalid.Field)
}

func TestEvaluate_InvalidArguments(t *testing.T) {
	_, err := Evaluate(-1, 100, 0.35)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Evaluate(1, 100, -0.1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
