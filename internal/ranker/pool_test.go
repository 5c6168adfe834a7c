package ranker

import (
	"errors"
	"testing"

	apperrors "github.com/aacvocab/termrank/pkg/errors"
)

// TestBuildPoolDedup verifies the kitchen scenario: whitespace variants and
// emoji-decorated duplicates collapse onto one record each.
func TestBuildPoolDedup(t *testing.T) {
	pool, err := buildPool([]string{"stove", "pot", "pan", "stove ", "🍳 pan"})
	if err != nil {
		t.Fatalf("buildPool: %v", err)
	}
	if len(pool) != 3 {
		t.Fatalf("got %d candidates, want 3", len(pool))
	}
	want := []string{"stove", "pot", "pan"}
	for i, key := range want {
		if pool[i].key != key {
			t.Errorf("pool[%d].key = %q, want %q", i, pool[i].key, key)
		}
		if pool[i].order != i {
			t.Errorf("pool[%d].order = %d, want %d", i, pool[i].order, i)
		}
	}
}

// TestBuildPoolDedupDecoratedWhitespace verifies that a decorated duplicate
// still collapses when whitespace precedes the decoration.
func TestBuildPoolDedupDecoratedWhitespace(t *testing.T) {
	pool, err := buildPool([]string{"pan", " 🍳 pan"})
	if err != nil {
		t.Fatalf("buildPool: %v", err)
	}
	if len(pool) != 1 {
		t.Fatalf("got %d candidates, want 1", len(pool))
	}
	if pool[0].key != "pan" || pool[0].display != "pan" {
		t.Errorf("pool[0] = (%q, %q), want (pan, pan)", pool[0].display, pool[0].key)
	}
}

// TestBuildPoolKeepsFirstDisplay verifies case-insensitive dedup keeps the
// display text of the first occurrence.
func TestBuildPoolKeepsFirstDisplay(t *testing.T) {
	pool, err := buildPool([]string{"Stove", "stove", "STOVE"})
	if err != nil {
		t.Fatalf("buildPool: %v", err)
	}
	if len(pool) != 1 {
		t.Fatalf("got %d candidates, want 1", len(pool))
	}
	if pool[0].display != "Stove" {
		t.Errorf("display = %q, want %q", pool[0].display, "Stove")
	}
	if pool[0].key != "stove" {
		t.Errorf("key = %q, want %q", pool[0].key, "stove")
	}
}

// TestBuildPoolEmpty verifies that a pool with no usable candidates fails
// with ErrEmptyPool.
func TestBuildPoolEmpty(t *testing.T) {
	for _, raw := range [][]string{
		nil,
		{},
		{"", "   ", "!!!", "...", "--", "🍳"},
	} {
		if _, err := buildPool(raw); !errors.Is(err, apperrors.ErrEmptyPool) {
			t.Errorf("buildPool(%q) error = %v, want ErrEmptyPool", raw, err)
		}
	}
}

// TestNormalizeCandidate covers the normalization policy: decoration marks
// stripped, whitespace collapsed, over-long and multi-word junk dropped.
func TestNormalizeCandidate(t *testing.T) {
	tests := []struct {
		in      string
		display string
		key     string
		ok      bool
	}{
		{"pan", "pan", "pan", true},
		{"🍳 pan", "pan", "pan", true},
		{" 🍳 pan", "pan", "pan", true},
		{"✨ 🍳 pan", "pan", "pan", true},
		{"🍳pan", "pan", "pan", true},
		{"  stove  ", "stove", "stove", true},
		{"Swimming   Pool", "Swimming Pool", "swimming pool", true},
		{"check-in", "check-in", "check-in", true},
		{"don't", "don't", "don't", true},
		{"friends!", "friends", "friends", true},
		{"", "", "", false},
		{"   ", "", "", false},
		{"x", "", "", false},
		{"one two three", "", "", false},
		{"✨✨", "", "", false},
	}
	for _, tt := range tests {
		display, key, ok := normalizeCandidate(tt.in)
		if ok != tt.ok || display != tt.display || key != tt.key {
			t.Errorf("normalizeCandidate(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, display, key, ok, tt.display, tt.key, tt.ok)
		}
	}
}
