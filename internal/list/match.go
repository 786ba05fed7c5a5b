package list

import "strings"

// variantDictionary maps common misspellings to the token shoppers meant.
// Keys and values are lowercase single tokens.
var variantDictionary = map[string]string{
	"bananna":  "banana",
	"bannana":  "banana",
	"tomatoe":  "tomato",
	"potatoe":  "potato",
	"avacado":  "avocado",
	"brocolli": "broccoli",
	"letuce":   "lettuce",
	"yoghurt":  "yogurt",
	"chese":    "cheese",
	"melk":     "milk",
	"bred":     "bread",
	"spagetti": "spaghetti",
	"cofee":    "coffee",
	"shrimps":  "shrimp",
}

// matchOutcome reports where an incoming name landed in the existing entries.
type matchOutcome struct {
	index     int
	matched   bool
	corrected string
}

// findMatch runs the reconciliation chain against existing canonical names:
// exact or plural equality, then dictionary-corrected lookup, then the
// containment/prefix heuristic. Names are compared case-folded.
func findMatch(canonical string, existing []string) matchOutcome {
	key := strings.ToLower(canonical)
	keys := make([]string, len(existing))
	for i, name := range existing {
		keys[i] = strings.ToLower(name)
	}

	if idx, ok := exactOrPlural(key, keys); ok {
		return matchOutcome{index: idx, matched: true}
	}

	if corrected, changed := correctVariants(key); changed {
		if idx, ok := exactOrPlural(corrected, keys); ok {
			return matchOutcome{index: idx, matched: true, corrected: corrected}
		}
		if idx, ok := substringMatch(corrected, keys); ok {
			return matchOutcome{index: idx, matched: true, corrected: corrected}
		}
		if idx, ok := nearMatch(corrected, keys); ok {
			return matchOutcome{index: idx, matched: true, corrected: corrected}
		}
		return matchOutcome{corrected: corrected}
	}

	if idx, ok := nearMatch(key, keys); ok {
		return matchOutcome{index: idx, matched: true}
	}
	return matchOutcome{}
}

// exactOrPlural treats "banana", "bananas" and a trailing-s-trimmed form as
// the same name.
func exactOrPlural(key string, existing []string) (int, bool) {
	for i, name := range existing {
		if name == key || name == key+"s" || trimPlural(name) == key || name == trimPlural(key) {
			return i, true
		}
	}
	return -1, false
}

func substringMatch(key string, existing []string) (int, bool) {
	for i, name := range existing {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return i, true
		}
	}
	return -1, false
}

// nearMatch is the last-resort heuristic: two names are the same item only
// when their lengths differ by at most two AND one contains the other or
// both share a three-character prefix. The length gate keeps "tomato" from
// swallowing "tomato soup".
func nearMatch(key string, existing []string) (int, bool) {
	for i, name := range existing {
		diff := len(name) - len(key)
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 {
			continue
		}
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return i, true
		}
		if len(name) > 3 && len(key) > 3 && name[:3] == key[:3] {
			return i, true
		}
	}
	return -1, false
}

// correctVariants rewrites each token through the misspelling dictionary and
// reports whether anything changed.
func correctVariants(key string) (string, bool) {
	tokens := strings.Fields(key)
	changed := false
	for i, token := range tokens {
		if fixed, ok := variantDictionary[token]; ok {
			tokens[i] = fixed
			changed = true
		}
	}
	if !changed {
		return key, false
	}
	return strings.Join(tokens, " "), true
}

func trimPlural(name string) string {
	if strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") && len(name) > 2 {
		return name[:len(name)-1]
	}
	return name
}
