package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-goal/domain"
)

func TestComputeAchievementHorizon_AlreadyReached(t *testing.T) {
	years, err := ComputeAchievementHorizon(100, 100, 0, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, years)

	years, err = ComputeAchievementHorizon(0, 0, 0, -0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, years)
}

func TestComputeAchievementHorizon_Scenario(t *testing.T) {
	// 10,000,000 de capital + 520,000 al mes al 2.67% anual hacia 120,000,000
	years, err := ComputeAchievementHorizon(120_000_000, 10_000_000, 520_000, 0.0267, 50)
	require.NoError(t, err)
	assert.Equal(t, 15, years)

	years, err = ComputeAchievementHorizon(120_000_000, 60_000_000, 520_000, 0.0267, 50)
	require.NoError(t, err)
	assert.Equal(t, 8, years)
}

func TestComputeAchievementHorizon_SaturatesWithoutGrowth(t *testing.T) {
	for _, rate := range []float64{0, -0.01, -1} {
		years, err := ComputeAchievementHorizon(1_000, 999, 0, rate, 50)
		require.NoError(t, err)
		assert.Equal(t, 50, years, "rate %v", rate)
	}
}

func TestComputeAchievementHorizon_SaturatesAtMaxYears(t *testing.T) {
	result, err := Project(1_000_000_000, 0, 1_000, 0.01, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, result.AchievementYears)
	assert.False(t, result.Reached)
	assert.Less(t, result.FinalCapital, int64(1_000_000_000))
}

func TestComputeAchievementHorizon_ContributionOnly(t *testing.T) {
	// 12 * 100 por año, sin rendimiento: 10 años para 12,000
	result, err := Project(12_000, 0, 100, 0, 50)
	require.NoError(t, err)

	assert.Equal(t, 10, result.AchievementYears)
	assert.True(t, result.Reached)
	assert.Equal(t, int64(12_000), result.FinalCapital)
}

func TestComputeAchievementHorizon_InvalidInputs(t *testing.T) {
	tests := []struct {
		name                          string
		target, capital, contribution int64
		rate                          float64
		maxYears                      int
	}{
		{"negative target", -1, 0, 0, 0, 50},
		{"negative capital", 10, -1, 0, 0, 50},
		{"negative contribution", 10, 0, -1, 0, 50},
		{"rate below total loss", 10, 0, 1, -1.5, 50},
		{"zero horizon", 10, 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAchievementHorizon(tt.target, tt.capital, tt.contribution, tt.rate, tt.maxYears)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProject_FinalCapitalSaturates(t *testing.T) {
	result, err := Project(1_000, 1, 0, 1e30, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AchievementYears)
	assert.True(t, result.Reached)
	assert.Equal(t, int64(math.MaxInt64), result.FinalCapital)

	result, err = Project(1_000, 10, 0, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.FinalCapital)
}

func TestOneYearProgress(t *testing.T) {
	assert.InDelta(t, 0.1353, OneYearProgress(120_000_000, 10_000_000, 520_000), 1e-4)
	assert.Equal(t, 1.0, OneYearProgress(0, 0, 0))
	assert.Equal(t, 1.0, OneYearProgress(100, 200, 0))
	assert.Equal(t, 0.0, OneYearProgress(100, 0, 0))
}
