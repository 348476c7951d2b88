package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "2,264,007원", FormatWon(2_264_007))
	assert.Equal(t, "0원", FormatWon(0))
	assert.Equal(t, "999원", FormatWon(999))
}

func TestFormatEok(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{120_000_000, "1.2억 원"},
		{600_000_000, "6억 원"},
		{1_010_000_000, "10억 원"},
		{1_290_000_000, "12.9억 원"},
		{50_000_000, "50,000,000원"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEok(tt.amount))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "3.90%", FormatPercent(0.039))
	assert.Equal(t, "2.67%", FormatPercent(0.0267))
	assert.Equal(t, "56.60%", FormatPercent(0.566))
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "15년", FormatYears(15, true))
	assert.Equal(t, "50년 이상 (목표 미달)", FormatYears(50, false))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█░░░░░░░░░", ProgressBar(0.1353, 10))
	assert.Equal(t, "░░░░", ProgressBar(-1, 4))
	assert.Equal(t, "████", ProgressBar(2, 4))
}
