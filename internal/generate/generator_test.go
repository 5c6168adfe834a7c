package generate

import (
	"reflect"
	"strings"
	"testing"
)

// TestParseTermList verifies that completion text is split into clean
// terms across the response shapes the model actually produces.
func TestParseTermList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single line",
			in:   "stove, pot, pan, cook",
			want: []string{"stove", "pot", "pan", "cook"},
		},
		{
			name: "multi line",
			in:   "stove, pot\npan, cook",
			want: []string{"stove", "pot", "pan", "cook"},
		},
		{
			name: "code fence",
			in:   "```\nstove, pot\n```",
			want: []string{"stove", "pot"},
		},
		{
			name: "ragged whitespace",
			in:   "  stove ,  pot ,, pan  ",
			want: []string{"stove", "pot", "pan"},
		},
		{
			name: "blank lines",
			in:   "\n\nstove\n\npot\n",
			want: []string{"stove", "pot"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "only fences",
			in:   "```text\n```",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTermList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTermList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestBuildPrompt verifies the prompt embeds the context and target count.
func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("kitchen cooking scene", 500)
	if !strings.Contains(p, `"kitchen cooking scene"`) {
		t.Error("prompt missing quoted context")
	}
	if !strings.Contains(p, "Generate 500 SINGLE WORDS") {
		t.Error("prompt missing target count")
	}
}
