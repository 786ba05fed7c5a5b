package catalog

import "strings"

// brandPrefixes are leading brand tokens stripped before canonicalizing. The
// dictionary is deliberately small; unknown brands simply survive into the
// canonical name.
var brandPrefixes = []string{
	"great value",
	"kirkland signature",
	"kirkland",
	"365",
	"trader joe's",
	"trader joes",
	"signature select",
	"market pantry",
	"good & gather",
	"simple truth",
	"store brand",
}

// compoundNouns keeps multi-word products intact when title-casing would
// otherwise be applied token by token.
var compoundNouns = map[string]string{
	"ground beef":       "Ground Beef",
	"ground turkey":     "Ground Turkey",
	"peanut butter":     "Peanut Butter",
	"olive oil":         "Olive Oil",
	"paper towel":       "Paper Towels",
	"paper towels":      "Paper Towels",
	"toilet paper":      "Toilet Paper",
	"dish soap":         "Dish Soap",
	"laundry detergent": "Laundry Detergent",
	"trash bags":        "Trash Bags",
	"orange juice":      "Orange Juice",
	"cream cheese":      "Cream Cheese",
	"sour cream":        "Sour Cream",
	"cottage cheese":    "Cottage Cheese",
	"half and half":     "Half And Half",
	"ice cream":         "Ice Cream",
	"tomato soup":       "Tomato Soup",
	"pork chops":        "Pork Chops",
	"canned beans":      "Canned Beans",
}

// sizeTokens are trailing quantity descriptors rendered uppercase so that
// "2lb" and "2LB" canonicalize identically.
var sizeTokens = map[string]bool{
	"oz":  true,
	"lb":  true,
	"lbs": true,
	"gal": true,
	"qt":  true,
	"ct":  true,
	"pk":  true,
	"ml":  true,
	"l":   true,
	"kg":  true,
	"g":   true,
}

// CanonicalName derives the display form used for dedup and pricing: brand
// prefix stripped, whitespace collapsed, compounds preserved, remaining
// tokens title-cased, size tokens uppercased.
func CanonicalName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}

	for _, brand := range brandPrefixes {
		if strings.HasPrefix(name, brand+" ") {
			name = strings.TrimSpace(strings.TrimPrefix(name, brand))
			break
		}
	}

	if compound, ok := compoundNouns[name]; ok {
		return compound
	}

	tokens := strings.Fields(name)
	for i, token := range tokens {
		if sizeTokens[stripDigits(token)] && hasDigit(token) {
			tokens[i] = strings.ToUpper(token)
			continue
		}
		tokens[i] = titleToken(token)
	}
	return strings.Join(tokens, " ")
}

func titleToken(token string) string {
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + token[1:]
}

func hasDigit(token string) bool {
	for _, r := range token {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func stripDigits(token string) string {
	var b strings.Builder
	for _, r := range token {
		if r >= '0' && r <= '9' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
