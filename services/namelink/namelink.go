// Package namelink reconciles scraped team-name variants (casing
// glitches like "San Francisco 49Ers") against the canonical team
// table before rows are aggregated by team.
package namelink

import (
	"gridiron-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

type Link struct {
	Scraped     string
	Canonical   string
	Correlation float64
}

// CreateLinks pairs scraped names with canonical ones: exact matches
// (after case/whitespace normalization) first, then each leftover
// scraped name takes the most similar unmatched canonical name by
// Jaro-Winkler. Every name is used at most once on each side.
func CreateLinks(scraped, canonical []string) []Link {
	swapped := false
	if len(canonical) < len(scraped) {
		scraped, canonical = canonical, scraped
		swapped = true
	}

	var result []Link
	matchedScraped := make(map[string]struct{})
	matchedCanonical := make(map[string]struct{})

	add := func(left, right string, correlation float64) {
		link := Link{Scraped: left, Canonical: right, Correlation: correlation}
		if swapped {
			link.Scraped, link.Canonical = right, left
		}
		result = append(result, link)
		matchedScraped[left] = struct{}{}
		matchedCanonical[right] = struct{}{}
	}

	for _, name := range scraped {
		for _, target := range canonical {
			if _, done := matchedCanonical[target]; done {
				continue
			}
			if textutil.NormalizeName(name) == textutil.NormalizeName(target) {
				add(name, target, 1)
				break
			}
		}
	}

	for _, name := range scraped {
		if _, done := matchedScraped[name]; done {
			continue
		}

		var bestSimilarity float64
		var bestTarget string
		for _, target := range canonical {
			if _, done := matchedCanonical[target]; done {
				continue
			}
			similarity := matchr.JaroWinkler(name, target, false)
			if similarity > bestSimilarity {
				bestSimilarity = similarity
				bestTarget = target
			}
		}

		if bestSimilarity > 0 {
			add(name, bestTarget, bestSimilarity)
		}
	}

	return result
}

// Canonicalize maps each scraped name to its linked canonical name.
// Links below minCorrelation are ignored, those names map to
// themselves.
func Canonicalize(scraped, canonical []string, minCorrelation float64) map[string]string {
	mapping := make(map[string]string, len(scraped))
	for _, name := range scraped {
		mapping[name] = name
	}
	for _, link := range CreateLinks(scraped, canonical) {
		if link.Correlation >= minCorrelation {
			mapping[link.Scraped] = link.Canonical
		}
	}
	return mapping
}
