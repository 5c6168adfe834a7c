package decor

import (
	"testing"

	"github.com/aacvocab/termrank/internal/ranker"
)

// TestLexiconLookup verifies hits are case-insensitive and misses degrade
// to the empty string.
func TestLexiconLookup(t *testing.T) {
	lex := NewLexicon()
	tests := []struct {
		text string
		want string
	}{
		{"stove", "🔥"},
		{"Stove", "🔥"},
		{"STOVE", "🔥"},
		{"pan", "🍳"},
		{"quasar", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := lex.Lookup(tt.text, ranker.CategoryNoun); got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
