package ranker

import "sort"

// selectTerms runs the quota-constrained MMR selection.
//
// Phase one walks the quota table in descending priority weight and runs
// a per-category MMR pass up to each configured minimum, so a tight
// budget serves high-priority categories first. Phase two is one global
// MMR pass filling the remaining budget, skipping categories already at
// their maximum.
//
// A category left under its minimum is reported as a warning, never an
// error: it only happens when the pool itself ran out of candidates of
// that category (or the budget was exhausted by higher-weight minimums).
func selectTerms(pool []candidate, p Params) []QuotaWarning {
	s := newSelection(pool, p.Lambda)

	quotas := make([]Quota, len(p.Quotas))
	copy(quotas, p.Quotas)
	sort.SliceStable(quotas, func(i, j int) bool {
		if quotas[i].Weight != quotas[j].Weight {
			return quotas[i].Weight > quotas[j].Weight
		}
		return quotas[i].Category < quotas[j].Category
	})

	for _, q := range quotas {
		cat := q.Category
		for s.catCount[cat] < q.Min && s.len() < p.Budget {
			if s.pick(func(i int) bool { return pool[i].category == cat }) < 0 {
				break
			}
		}
	}

	var maxFor [categoryCount]int
	for _, q := range quotas {
		maxFor[q.Category] = q.Max
	}
	for s.len() < p.Budget {
		idx := s.pick(func(i int) bool {
			m := maxFor[pool[i].category]
			return m <= 0 || s.catCount[pool[i].category] < m
		})
		if idx < 0 {
			break
		}
	}

	var supply [categoryCount]int
	for i := range pool {
		supply[pool[i].category]++
	}
	var warnings []QuotaWarning
	for _, q := range quotas {
		if q.Min == 0 || s.catCount[q.Category] >= q.Min {
			continue
		}
		warnings = append(warnings, QuotaWarning{
			Category:  q.Category,
			Minimum:   q.Min,
			Selected:  s.catCount[q.Category],
			Available: supply[q.Category],
		})
	}
	return warnings
}
