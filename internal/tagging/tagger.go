// Package tagging provides a lexicon-backed linguistic tagger for the
// ranking engine. It combines closed-class word tables (pronouns, function
// words) with suffix morphology rules for the open classes, and falls back
// to noun for plain alphabetic words, which is the common case in
// generated vocabulary.
package tagging

import (
	"strings"
	"unicode"

	"github.com/aacvocab/termrank/internal/ranker"
)

var pronouns = map[string]struct{}{
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
	"my": {}, "your": {}, "his": {}, "its": {}, "our": {}, "their": {},
	"mine": {}, "yours": {}, "hers": {}, "ours": {}, "theirs": {},
	"myself": {}, "yourself": {}, "himself": {}, "herself": {}, "itself": {},
	"ourselves": {}, "yourselves": {}, "themselves": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"who": {}, "whom": {}, "whose": {}, "which": {}, "what": {},
	"someone": {}, "anyone": {}, "everyone": {}, "nobody": {},
	"somebody": {}, "anybody": {}, "everybody": {},
	"something": {}, "anything": {}, "everything": {}, "nothing": {},
}

var functionWords = map[string]struct{}{
	"the": {}, "an": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {},
	"against": {}, "between": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "to": {},
	"from": {}, "up": {}, "down": {}, "in": {}, "out": {}, "on": {},
	"off": {}, "over": {}, "under": {}, "again": {}, "then": {}, "once": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "shall": {}, "should": {},
	"may": {}, "might": {}, "must": {}, "can": {}, "could": {},
	"not": {}, "no": {}, "nor": {}, "so": {}, "than": {}, "too": {},
	"very": {}, "just": {}, "as": {}, "while": {}, "because": {},
}

// commonVerbs covers base forms the suffix rules cannot reach: everyday
// AAC vocabulary is dominated by exactly these.
var commonVerbs = map[string]struct{}{
	"go": {}, "run": {}, "eat": {}, "make": {}, "take": {}, "get": {},
	"give": {}, "come": {}, "see": {}, "say": {}, "know": {}, "think": {},
	"talk": {}, "walk": {}, "sit": {}, "stand": {}, "sleep": {}, "cook": {},
	"read": {}, "write": {}, "play": {}, "help": {}, "want": {}, "need": {},
	"like": {}, "love": {}, "open": {}, "close": {}, "wash": {}, "drink": {},
	"buy": {}, "drive": {}, "swim": {}, "sing": {}, "jump": {}, "climb": {},
	"throw": {}, "catch": {}, "hold": {}, "wear": {}, "feel": {}, "hear": {},
	"look": {}, "watch": {}, "listen": {}, "speak": {}, "ask": {}, "tell": {},
	"find": {}, "put": {}, "keep": {}, "move": {}, "stop": {}, "start": {},
	"turn": {}, "wait": {}, "stay": {}, "leave": {}, "bring": {}, "carry": {},
	"push": {}, "pull": {}, "cut": {}, "clean": {}, "learn": {}, "teach": {},
	"work": {}, "create": {}, "save": {}, "share": {}, "test": {}, "click": {},
	"type": {}, "edit": {}, "sail": {}, "relax": {}, "stir": {}, "bake": {},
	"boil": {}, "fry": {}, "chop": {}, "pour": {}, "taste": {}, "serve": {},
}

var commonAdjectives = map[string]struct{}{
	"happy": {}, "sad": {}, "big": {}, "small": {}, "hot": {}, "cold": {},
	"good": {}, "bad": {}, "new": {}, "old": {}, "fast": {}, "slow": {},
	"easy": {}, "hard": {}, "soft": {}, "loud": {}, "quiet": {},
	"dirty": {}, "full": {}, "empty": {}, "nice": {}, "warm": {},
	"cool": {}, "dry": {}, "wet": {}, "safe": {}, "tired": {},
	"hungry": {}, "thirsty": {}, "angry": {}, "scared": {}, "funny": {},
	"pretty": {}, "dark": {}, "light": {}, "heavy": {}, "tall": {},
	"short": {}, "long": {}, "fresh": {}, "sweet": {}, "sour": {},
	"spicy": {}, "salty": {}, "ready": {}, "busy": {}, "comfortable": {},
}

// suffixRules map word endings to categories, most specific first. minLen
// keeps short words like "king" or "red" from matching verb and adjective
// endings meant for derived forms.
var suffixRules = []struct {
	suffix string
	cat    ranker.Category
	minLen int
}{
	{"ization", ranker.CategoryNoun, 9},
	{"ness", ranker.CategoryNoun, 6},
	{"ment", ranker.CategoryNoun, 6},
	{"tion", ranker.CategoryNoun, 6},
	{"sion", ranker.CategoryNoun, 6},
	{"ship", ranker.CategoryNoun, 6},
	{"hood", ranker.CategoryNoun, 6},
	{"ance", ranker.CategoryNoun, 6},
	{"ence", ranker.CategoryNoun, 6},
	{"ity", ranker.CategoryNoun, 5},
	{"ism", ranker.CategoryNoun, 5},
	{"ful", ranker.CategoryAdjective, 5},
	{"ous", ranker.CategoryAdjective, 5},
	{"ive", ranker.CategoryAdjective, 5},
	{"able", ranker.CategoryAdjective, 6},
	{"ible", ranker.CategoryAdjective, 6},
	{"less", ranker.CategoryAdjective, 6},
	{"ish", ranker.CategoryAdjective, 5},
	{"ize", ranker.CategoryVerb, 5},
	{"ise", ranker.CategoryVerb, 5},
	{"ify", ranker.CategoryVerb, 5},
	{"ing", ranker.CategoryVerb, 6},
	{"ed", ranker.CategoryVerb, 5},
}

// Lexicon implements ranker.Tagger without external calls, so tagging can
// never stall or abort a ranking request.
type Lexicon struct{}

// NewLexicon creates the lexicon tagger.
func NewLexicon() *Lexicon {
	return &Lexicon{}
}

// Tag classifies a term by its head word (the last word of a compound).
// ok=false means the term carries no alphabetic head word to classify.
func (l *Lexicon) Tag(text string) (ranker.Category, bool) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return ranker.CategoryOther, false
	}
	head := words[len(words)-1]

	if _, ok := pronouns[head]; ok {
		return ranker.CategoryPronoun, true
	}
	if _, ok := functionWords[head]; ok {
		return ranker.CategoryOther, true
	}
	if _, ok := commonVerbs[head]; ok {
		return ranker.CategoryVerb, true
	}
	if _, ok := commonAdjectives[head]; ok {
		return ranker.CategoryAdjective, true
	}
	for _, rule := range suffixRules {
		if len(head) >= rule.minLen && strings.HasSuffix(head, rule.suffix) {
			return rule.cat, true
		}
	}
	if isAlphabetic(head) {
		return ranker.CategoryNoun, true
	}
	return ranker.CategoryOther, false
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return s != ""
}
