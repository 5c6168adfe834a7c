package tagging

import (
	"testing"

	"github.com/aacvocab/termrank/internal/ranker"
)

// TestTagClasses verifies that each word class resolves through the right
// table or suffix rule.
func TestTagClasses(t *testing.T) {
	lex := NewLexicon()
	tests := []struct {
		text string
		want ranker.Category
		ok   bool
	}{
		{"they", ranker.CategoryPronoun, true},
		{"Myself", ranker.CategoryPronoun, true},
		{"with", ranker.CategoryOther, true},
		{"because", ranker.CategoryOther, true},
		{"run", ranker.CategoryVerb, true},
		{"cook", ranker.CategoryVerb, true},
		{"cooking", ranker.CategoryVerb, true},
		{"organize", ranker.CategoryVerb, true},
		{"happy", ranker.CategoryAdjective, true},
		{"beautiful", ranker.CategoryAdjective, true},
		{"breakable", ranker.CategoryAdjective, true},
		{"happiness", ranker.CategoryNoun, true},
		{"friendship", ranker.CategoryNoun, true},
		{"dog", ranker.CategoryNoun, true},
		{"stove", ranker.CategoryNoun, true},
		{"123", ranker.CategoryOther, false},
		{"", ranker.CategoryOther, false},
		{"   ", ranker.CategoryOther, false},
	}
	for _, tt := range tests {
		got, ok := lex.Tag(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Tag(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

// TestTagUsesHeadWord verifies that compounds are classified by their last
// word rather than the first.
func TestTagUsesHeadWord(t *testing.T) {
	lex := NewLexicon()
	tests := []struct {
		text string
		want ranker.Category
	}{
		{"swimming pool", ranker.CategoryNoun},
		{"frying pan", ranker.CategoryNoun},
		{"deep clean", ranker.CategoryVerb},
		{"very happy", ranker.CategoryAdjective},
	}
	for _, tt := range tests {
		got, ok := lex.Tag(tt.text)
		if !ok || got != tt.want {
			t.Errorf("Tag(%q) = (%v, %v), want (%v, true)", tt.text, got, ok, tt.want)
		}
	}
}

// TestTagShortWordsEscapeSuffixRules verifies that minLen keeps short base
// words out of the derived-form suffix rules.
func TestTagShortWordsEscapeSuffixRules(t *testing.T) {
	lex := NewLexicon()
	// "king" ends in -ing and "red" ends in -ed, but both are plain nouns
	// and adjectives far too short to be derived forms.
	if got, ok := lex.Tag("king"); !ok || got != ranker.CategoryNoun {
		t.Errorf("Tag(king) = (%v, %v), want (noun, true)", got, ok)
	}
	if got, ok := lex.Tag("bed"); !ok || got != ranker.CategoryNoun {
		t.Errorf("Tag(bed) = (%v, %v), want (noun, true)", got, ok)
	}
}
