package ranker

import (
	"math"
	"sort"
)

// DecorationLookup is the decoration collaborator capability. A missing
// or failed lookup yields the empty string, never an error.
type DecorationLookup interface {
	Lookup(text string, category Category) string
}

// assemble turns the selection into the final ordered output: descending
// relevance score with a stable tie-break on first-seen pool order, plus
// per-term decoration.
func assemble(pool []candidate, decor DecorationLookup) []RankedTerm {
	out := make([]RankedTerm, 0, len(pool))
	for i := range pool {
		if !pool[i].selected {
			continue
		}
		out = append(out, RankedTerm{
			Text:     pool[i].display,
			Category: pool[i].category,
			Score:    math.Round(pool[i].score*10000) / 10000,
		})
	}
	// Terms arrive in pool order, so a stable sort on score alone keeps
	// first-seen order among equals.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if decor != nil {
		for i := range out {
			out[i].Decoration = decor.Lookup(out[i].Text, out[i].Category)
		}
	}
	return out
}
