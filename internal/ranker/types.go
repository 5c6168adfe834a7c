package ranker

import (
	"fmt"

	"github.com/aacvocab/termrank/pkg/config"
	apperrors "github.com/aacvocab/termrank/pkg/errors"
)

// candidate is the internal term record flowing through the pipeline.
// Embedding, category, and score are attached by later stages; the score
// is computed once and never revised as selection state mutates. The
// selected flag flips to true at most once.
type candidate struct {
	display   string
	key       string
	order     int
	embedding []float32
	category  Category
	score     float64
	selected  bool
}

// Quota is one row of the category quota table. Max <= 0 means uncapped.
// Weight orders categories when minimums compete for a tight budget.
type Quota struct {
	Category Category
	Min      int
	Max      int
	Weight   float64
}

// Params carries the per-request ranking knobs: selection budget, the MMR
// relevance/diversity trade-off, and the quota table.
type Params struct {
	Budget int
	Lambda float64
	Quotas []Quota
}

func (p Params) validate() error {
	if p.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive, got %d", apperrors.ErrInvalidInput, p.Budget)
	}
	if p.Lambda < 0 || p.Lambda > 1 {
		return fmt.Errorf("%w: lambda must be in [0,1], got %g", apperrors.ErrInvalidInput, p.Lambda)
	}
	seen := make(map[Category]struct{}, len(p.Quotas))
	for _, q := range p.Quotas {
		if _, dup := seen[q.Category]; dup {
			return fmt.Errorf("%w: duplicate quota for category %s", apperrors.ErrInvalidInput, q.Category)
		}
		seen[q.Category] = struct{}{}
		if q.Min < 0 {
			return fmt.Errorf("%w: quota %s: negative minimum", apperrors.ErrInvalidInput, q.Category)
		}
		if q.Max > 0 && q.Max < q.Min {
			return fmt.Errorf("%w: quota %s: max %d below min %d", apperrors.ErrInvalidInput, q.Category, q.Max, q.Min)
		}
	}
	return nil
}

// ParseQuotas converts the configured quota table into typed quotas.
// Unknown category names are rejected so the allocator can reason over the
// closed category set.
func ParseQuotas(rows []config.QuotaConfig) ([]Quota, error) {
	quotas := make([]Quota, 0, len(rows))
	for _, row := range rows {
		cat, ok := ParseCategory(row.Category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown quota category %q", apperrors.ErrInvalidInput, row.Category)
		}
		quotas = append(quotas, Quota{
			Category: cat,
			Min:      row.Min,
			Max:      row.Max,
			Weight:   row.Weight,
		})
	}
	return quotas, nil
}

// RankedTerm is one finalized entry of the ranking output.
type RankedTerm struct {
	Text       string   `json:"term"`
	Category   Category `json:"category"`
	Score      float64  `json:"score"`
	Decoration string   `json:"decoration,omitempty"`
}

// QuotaWarning reports a category minimum the pool could not supply. It is
// informational; the result around it is still valid.
type QuotaWarning struct {
	Category  Category `json:"category"`
	Minimum   int      `json:"minimum"`
	Selected  int      `json:"selected"`
	Available int      `json:"available"`
}

// Result is the ordered outcome of one ranking request.
type Result struct {
	Context  string         `json:"context"`
	Terms    []RankedTerm   `json:"terms"`
	Warnings []QuotaWarning `json:"warnings,omitempty"`
}
