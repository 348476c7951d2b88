// Package cli renders raw calculation results for the terminal.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

const eok = 100_000_000

// FormatWon adds thousands separators and the 원 suffix.
// e.g., 2264007 -> "2,264,007원"
func FormatWon(amount int64) string {
	return humanize.Comma(amount) + "원"
}

// FormatEok abbreviates amounts of at least 1억 to one decimal of 억,
// truncating rather than rounding. Smaller amounts fall back to FormatWon.
// e.g., 120000000 -> "1.2억 원", 600000000 -> "6억 원"
func FormatEok(amount int64) string {
	if amount < eok {
		return FormatWon(amount)
	}
	whole := amount / eok
	tenths := (amount % eok) / (eok / 10)
	if tenths > 0 {
		return fmt.Sprintf("%d.%d억 원", whole, tenths)
	}
	return fmt.Sprintf("%d억 원", whole)
}

// FormatPercent renders a fraction with two decimals, e.g. 0.039 -> "3.90%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatYears renders a projection horizon, flagging saturated ones.
func FormatYears(years int, reached bool) string {
	if !reached {
		return fmt.Sprintf("%d년 이상 (목표 미달)", years)
	}
	return fmt.Sprintf("%d년", years)
}

// ProgressBar draws a fixed-width bar for a ratio in [0, 1].
func ProgressBar(ratio float64, width int) string {
	filled := int(math.Round(math.Max(0, math.Min(1, ratio)) * float64(width)))
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
