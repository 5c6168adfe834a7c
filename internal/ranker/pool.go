package ranker

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/aacvocab/termrank/pkg/errors"
)

const (
	minTermRunes    = 2
	maxTermRunes    = 40
	maxWordsPerTerm = 2
)

// buildPool normalizes and deduplicates raw candidate strings into term
// records. The dedup key is the decoration-stripped, whitespace-collapsed,
// case-folded text; the display text of the first occurrence wins.
func buildPool(raw []string) ([]candidate, error) {
	pool := make([]candidate, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		display, key, ok := normalizeCandidate(s)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, candidate{
			display: display,
			key:     key,
			order:   len(pool),
		})
	}
	if len(pool) == 0 {
		return nil, apperrors.ErrEmptyPool
	}
	return pool, nil
}

// normalizeCandidate strips decoration marks, collapses whitespace, and
// derives the case-folded dedup key. ok=false drops the candidate:
// empty, punctuation-only, over-long, or more than two words.
//
// Decoration marks (emoji prefixes and stray punctuation) are stripped
// before both the dedup key and the display text, so "🍳 pan" and "pan"
// collapse to one record. The same stripped text is what gets embedded.
func normalizeCandidate(s string) (display, key string, ok bool) {
	// Stripping per word keeps "🍳 pan" and " 🍳 pan" on the same key:
	// a decoration-only token vanishes wherever whitespace put it.
	var words []string
	for _, w := range strings.Fields(s) {
		if w = stripDecoration(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 || len(words) > maxWordsPerTerm {
		return "", "", false
	}
	display = strings.Join(words, " ")
	key = strings.ToLower(display)
	if n := utf8.RuneCountInString(key); n < minTermRunes || n > maxTermRunes {
		return "", "", false
	}
	if !hasLetterOrDigit(key) {
		return "", "", false
	}
	return display, key, true
}

// stripDecoration trims every leading and trailing rune of a word that is
// neither a letter nor a digit. Interior punctuation ("check-in", "don't")
// survives.
func stripDecoration(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
