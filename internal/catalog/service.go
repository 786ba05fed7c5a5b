// Package catalog normalizes free-text product names into shelf profiles:
// category, aisle placement, suggested unit, and a canonical display name.
package catalog

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/dmfuentes/smartcart-backend/internal/similarity"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

const (
	// fuzzyThreshold gates edit-distance matches against the curated table.
	fuzzyThreshold = 0.7
	// fuzzyTableDiscount scales a table entry's confidence on a fuzzy hit.
	fuzzyTableDiscount = 0.8
	// fallbackConfidence marks a profile that matched nothing.
	fallbackConfidence = 0.3
)

type Service struct {
	log zerolog.Logger
}

type ServiceParams struct {
	Log zerolog.Logger
}

func NewService(params ServiceParams) *Service {
	return &Service{log: params.Log}
}

// Categorize resolves a raw product name to a Profile. Resolution is a
// strict priority chain: exact table hit, fuzzy table hit, keyword pattern,
// then the pantry fallback. The same input always yields the same profile.
func (s *Service) Categorize(raw string) Profile {
	canonical := CanonicalName(raw)
	key := lookupKey(canonical)

	if entry, ok := canonicalTable[key]; ok {
		return profileFrom(entry, canonical, entry.confidence)
	}
	if singular := singularize(key); singular != key {
		if entry, ok := canonicalTable[singular]; ok {
			return profileFrom(entry, canonical, entry.confidence)
		}
	}

	if entry, conf, ok := s.fuzzyLookup(key); ok {
		return profileFrom(entry, canonical, conf)
	}

	for _, set := range patternSets {
		for _, pattern := range set.patterns {
			if pattern.MatchString(key) {
				return Profile{
					Category:      set.category,
					Subcategory:   set.subcategory,
					Aisle:         set.aisle,
					Section:       set.section,
					SuggestedUnit: set.unit,
					Confidence:    set.confidence,
					CanonicalName: canonical,
				}
			}
		}
	}

	s.log.Debug().Str("name", raw).Msg("no category match, applying fallback")
	entry := canonicalTable["rice"]
	return Profile{
		Category:      enums.CategoryFallback,
		Subcategory:   "General",
		Aisle:         entry.aisle,
		Section:       entry.section,
		SuggestedUnit: enums.DefaultUnit,
		Confidence:    fallbackConfidence,
		CanonicalName: canonical,
	}
}

// ReferencePrice returns the curated per-unit baseline in cents for a name,
// or false when the catalog carries no price signal for it.
func (s *Service) ReferencePrice(name string) (int64, bool) {
	key := lookupKey(CanonicalName(name))
	if entry, ok := canonicalTable[key]; ok {
		return entry.refPriceCents, true
	}
	if singular := singularize(key); singular != key {
		if entry, ok := canonicalTable[singular]; ok {
			return entry.refPriceCents, true
		}
	}
	if entry, _, ok := s.fuzzyLookup(key); ok {
		return entry.refPriceCents, true
	}
	for _, set := range patternSets {
		for _, pattern := range set.patterns {
			if pattern.MatchString(key) {
				return set.refPriceCents, true
			}
		}
	}
	return 0, false
}

// fuzzyLookup scans the curated table for the closest key above the
// threshold. Ties break toward the lexically smaller key so results stay
// deterministic across map iteration orders.
func (s *Service) fuzzyLookup(key string) (tableEntry, float64, bool) {
	var (
		bestKey   string
		bestScore float64
		found     bool
	)
	for candidate := range canonicalTable {
		score := similarity.Score(key, candidate)
		if score <= fuzzyThreshold {
			continue
		}
		if !found || score > bestScore || (score == bestScore && candidate < bestKey) {
			bestKey, bestScore, found = candidate, score, true
		}
	}
	if !found {
		return tableEntry{}, 0, false
	}

	entry := canonicalTable[bestKey]
	conf := bestScore
	if discounted := entry.confidence * fuzzyTableDiscount; discounted > conf {
		conf = discounted
	}
	return entry, conf, true
}

func profileFrom(entry tableEntry, canonical string, confidence float64) Profile {
	return Profile{
		Category:      entry.category,
		Subcategory:   entry.subcategory,
		Aisle:         entry.aisle,
		Section:       entry.section,
		SuggestedUnit: entry.unit,
		Confidence:    confidence,
		CanonicalName: canonical,
	}
}

func lookupKey(canonical string) string {
	return strings.ToLower(canonical)
}

// singularize trims the plural suffixes that show up on shopping lists. It
// is intentionally naive; the fuzzy pass catches irregular forms.
func singularize(name string) string {
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 4:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "es") && len(name) > 3 &&
		(strings.HasSuffix(name, "oes") || strings.HasSuffix(name, "ches") || strings.HasSuffix(name, "shes") || strings.HasSuffix(name, "sses")):
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") && len(name) > 2:
		return name[:len(name)-1]
	}
	return name
}
