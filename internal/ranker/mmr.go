package ranker

// selection is the transient state of one MMR run: an arena over the
// candidate slice with a selected mask, the per-candidate diversity
// penalty (max cosine similarity to anything already selected), and
// running per-category counts. It lives for one ranking request and is
// discarded after assembly.
type selection struct {
	pool     []candidate
	lambda   float64
	selected []bool
	penalty  []float64
	picks    []int
	catCount [categoryCount]int
}

func newSelection(pool []candidate, lambda float64) *selection {
	return &selection{
		pool:     pool,
		lambda:   lambda,
		selected: make([]bool, len(pool)),
		penalty:  make([]float64, len(pool)),
	}
}

func (s *selection) len() int {
	return len(s.picks)
}

// pick takes the eligible candidate maximizing
//
//	mmr = lambda*relevance - (1-lambda)*penalty
//
// Ties break on higher raw relevance, then on first-seen pool order, so
// the choice is a total order and the whole run is deterministic. Returns
// the picked index, or -1 when no candidate is eligible.
func (s *selection) pick(eligible func(i int) bool) int {
	best := -1
	var bestMMR, bestRel float64
	for i := range s.pool {
		if s.selected[i] || (eligible != nil && !eligible(i)) {
			continue
		}
		mmr := s.lambda*s.pool[i].score - (1-s.lambda)*s.penalty[i]
		if best < 0 || mmr > bestMMR || (mmr == bestMMR && s.pool[i].score > bestRel) {
			best, bestMMR, bestRel = i, mmr, s.pool[i].score
		}
	}
	if best >= 0 {
		s.take(best)
	}
	return best
}

// take marks candidate i selected and folds its similarity into every
// remaining candidate's penalty. Maintaining the running maximum here
// keeps each pick O(|pool|) instead of rescanning the selected set.
func (s *selection) take(i int) {
	s.selected[i] = true
	s.pool[i].selected = true
	s.picks = append(s.picks, i)
	s.catCount[s.pool[i].category]++
	for j := range s.pool {
		if s.selected[j] {
			continue
		}
		if sim := cosineSimilarity(s.pool[j].embedding, s.pool[i].embedding); sim > s.penalty[j] {
			s.penalty[j] = sim
		}
	}
}
