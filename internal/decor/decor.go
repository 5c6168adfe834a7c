// Package decor implements the decoration lookup the output assembler
// consumes: it maps a term to a single emoji. Lookups degrade to the empty
// string; a missing decoration is cosmetic, never an error.
package decor

import (
	"strings"

	"github.com/aacvocab/termrank/internal/ranker"
)

// Lexicon is a static emoji table keyed by lowercase term text.
type Lexicon struct {
	table map[string]string
}

// NewLexicon creates the built-in emoji lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{table: builtinEmoji}
}

// Lookup returns the emoji for a term, or "" when the table has none.
func (l *Lexicon) Lookup(text string, _ ranker.Category) string {
	return l.table[strings.ToLower(text)]
}

var builtinEmoji = map[string]string{
	"eat":      "🍽️",
	"drink":    "🥤",
	"cook":     "🍳",
	"bake":     "🥖",
	"stove":    "🔥",
	"pot":      "🍲",
	"pan":      "🍳",
	"kitchen":  "🍴",
	"food":     "🍎",
	"water":    "💧",
	"coffee":   "☕",
	"tea":      "🍵",
	"bread":    "🍞",
	"fruit":    "🍇",
	"sleep":    "😴",
	"run":      "🏃",
	"walk":     "🚶",
	"swim":     "🏊",
	"play":     "🎮",
	"sing":     "🎤",
	"music":    "🎵",
	"read":     "📖",
	"write":    "✍️",
	"book":     "📚",
	"school":   "🏫",
	"teacher":  "🧑‍🏫",
	"student":  "🎓",
	"learn":    "🧠",
	"think":    "💭",
	"talk":     "💬",
	"listen":   "👂",
	"look":     "👀",
	"work":     "💼",
	"home":     "🏠",
	"family":   "👪",
	"friend":   "🤝",
	"happy":    "😊",
	"sad":      "😢",
	"angry":    "😠",
	"tired":    "🥱",
	"love":     "❤️",
	"help":     "🆘",
	"boat":     "⛵",
	"sail":     "⛵",
	"ocean":    "🌊",
	"wave":     "🌊",
	"beach":    "🏖️",
	"sun":      "☀️",
	"rain":     "🌧️",
	"tree":     "🌳",
	"flower":   "🌸",
	"dog":      "🐕",
	"cat":      "🐈",
	"car":      "🚗",
	"bus":      "🚌",
	"train":    "🚆",
	"computer": "💻",
	"phone":    "📱",
	"clean":    "🧹",
	"wash":     "🧼",
	"hot":      "🥵",
	"cold":     "🥶",
	"time":     "⏰",
	"night":    "🌙",
	"morning":  "🌅",
	"doctor":   "🩺",
	"medicine": "💊",
	"money":    "💰",
	"game":     "🎲",
	"ball":     "⚽",
}
