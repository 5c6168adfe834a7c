package ranker

import (
	"encoding/json"
	"strings"
)

// Category is the closed set of linguistic categories a candidate term can
// carry. Classification is advisory: it steers quota balancing, never
// relevance.
type Category uint8

const (
	CategoryNoun Category = iota
	CategoryVerb
	CategoryAdjective
	CategoryPronoun
	CategoryOther

	categoryCount = 5
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryNoun,
	CategoryVerb,
	CategoryAdjective,
	CategoryPronoun,
	CategoryOther,
}

func (c Category) String() string {
	switch c {
	case CategoryNoun:
		return "noun"
	case CategoryVerb:
		return "verb"
	case CategoryAdjective:
		return "adjective"
	case CategoryPronoun:
		return "pronoun"
	default:
		return "other"
	}
}

// MarshalJSON encodes the category as its lowercase name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ParseCategory maps a category name to its enum value. Unknown names
// return ok=false; callers decide whether that is a default or an error.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noun":
		return CategoryNoun, true
	case "verb":
		return CategoryVerb, true
	case "adjective":
		return CategoryAdjective, true
	case "pronoun":
		return CategoryPronoun, true
	case "other", "function":
		return CategoryOther, true
	default:
		return CategoryOther, false
	}
}

// Tagger is the linguistic-tagging capability the classifier consumes.
// ok=false means the tagger could not classify the term; the classifier
// then falls back to CategoryOther rather than failing the request.
type Tagger interface {
	Tag(text string) (Category, bool)
}

// classifyPool attaches a category to every candidate. A nil tagger and
// any unclassifiable term both degrade to CategoryOther.
func classifyPool(pool []candidate, tagger Tagger) {
	for i := range pool {
		cat := CategoryOther
		if tagger != nil {
			if tagged, ok := tagger.Tag(pool[i].key); ok {
				cat = tagged
			}
		}
		pool[i].category = cat
	}
}
