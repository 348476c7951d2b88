package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"home-goal/domain"
)

func TestSumSelectedChallenges(t *testing.T) {
	catalog := DefaultPolicy().Challenges

	tests := []struct {
		name       string
		selections domain.ChallengeSelections
		want       int64
	}{
		{"empty", nil, 0},
		{"single", domain.ChallengeSelections{"coffee"}, 20_000},
		{"all", domain.ChallengeSelections{"coffee", "taxi", "subscription", "dining"}, 95_000},
		{"unknown ignored", domain.ChallengeSelections{"taxi", "gym"}, 30_000},
		{"duplicates count once", domain.ChallengeSelections{"dining", "dining"}, 25_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumSelectedChallenges(tt.selections, catalog))
		})
	}
}

func TestSumSelectedChallenges_OrderIndependent(t *testing.T) {
	catalog := DefaultPolicy().Challenges

	a := SumSelectedChallenges(domain.ChallengeSelections{"coffee", "taxi", "dining"}, catalog)
	b := SumSelectedChallenges(domain.ChallengeSelections{"dining", "coffee", "taxi"}, catalog)

	assert.Equal(t, a, b)
}

func TestSumSelectedChallenges_AllEqualsCatalogTotal(t *testing.T) {
	catalog := domain.ChallengeCatalog{"a": 1, "b": 20, "c": 300}

	var selections domain.ChallengeSelections
	var total int64
	for id, amount := range catalog {
		selections = append(selections, id)
		total += amount
	}

	assert.Equal(t, total, SumSelectedChallenges(selections, catalog))
	assert.Equal(t, int64(0), SumSelectedChallenges(selections, nil))
}
