package ranker

import "testing"

// TestParseCategoryRoundTrip verifies every category name parses back to
// its enum value and unknown names report ok=false.
func TestParseCategoryRoundTrip(t *testing.T) {
	for _, cat := range Categories {
		parsed, ok := ParseCategory(cat.String())
		if !ok || parsed != cat {
			t.Errorf("ParseCategory(%q) = (%v, %v), want (%v, true)", cat.String(), parsed, ok, cat)
		}
	}
	if _, ok := ParseCategory("gerund"); ok {
		t.Error("ParseCategory(\"gerund\") ok = true, want false")
	}
	if cat, ok := ParseCategory("  Verb "); !ok || cat != CategoryVerb {
		t.Errorf("ParseCategory with case/space = (%v, %v), want (verb, true)", cat, ok)
	}
}

// TestClassifyPoolDefaultsToOther verifies unclassifiable terms and a nil
// tagger degrade to CategoryOther instead of failing.
func TestClassifyPoolDefaultsToOther(t *testing.T) {
	pool := []candidate{{key: "stove"}, {key: "cook"}}
	classifyPool(pool, nil)
	for i := range pool {
		if pool[i].category != CategoryOther {
			t.Errorf("nil tagger: pool[%d].category = %v, want other", i, pool[i].category)
		}
	}

	tagger := stubTagger{tags: map[string]Category{"cook": CategoryVerb}}
	classifyPool(pool, tagger)
	if pool[0].category != CategoryOther {
		t.Errorf("untagged term category = %v, want other", pool[0].category)
	}
	if pool[1].category != CategoryVerb {
		t.Errorf("tagged term category = %v, want verb", pool[1].category)
	}
}

// TestAssembleOrdersAndDecorates verifies descending score order with a
// stable first-seen tie-break and per-term decoration.
func TestAssembleOrdersAndDecorates(t *testing.T) {
	pool := scoredPool([]candidate{
		{key: "pan", display: "pan", score: 0.7, selected: true, category: CategoryNoun},
		{key: "tie-a", display: "tie-a", score: 0.9, selected: true, category: CategoryNoun},
		{key: "skip", display: "skip", score: 0.99, selected: false, category: CategoryNoun},
		{key: "tie-b", display: "tie-b", score: 0.9, selected: true, category: CategoryNoun},
	})
	terms := assemble(pool, decorSuffix{})
	want := []string{"tie-a", "tie-b", "pan"}
	if len(terms) != len(want) {
		t.Fatalf("got %d terms, want %d", len(terms), len(want))
	}
	for i, text := range want {
		if terms[i].Text != text {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i].Text, text)
		}
		if terms[i].Decoration != "*"+text {
			t.Errorf("terms[%d].Decoration = %q, want %q", i, terms[i].Decoration, "*"+text)
		}
	}
}

type decorSuffix struct{}

func (decorSuffix) Lookup(text string, _ Category) string {
	return "*" + text
}
