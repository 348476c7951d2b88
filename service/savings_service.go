package service

import "home-goal/domain"

// SumSelectedChallenges adds up the monthly saving of every selected challenge.
// Identifiers missing from catalog are ignored and repeated identifiers count once.
func SumSelectedChallenges(
	selections domain.ChallengeSelections,
	catalog domain.ChallengeCatalog,
) int64 {
	seen := make(map[string]struct{}, len(selections))
	var total int64

	for _, id := range selections {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if amount, ok := catalog[id]; ok && amount > 0 {
			total += amount
		}
	}
	return total
}
