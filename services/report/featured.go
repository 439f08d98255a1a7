package report

import (
	"gridiron-backend/services/analysis"

	"github.com/mazen160/go-random"
)

const featuredPerEmotion = 3

// race buckets tried first so featured players skew diverse rather
// than mirroring the league's majority group
var featuredRacePriority = []string{"Black", "White", "Asian", "Middle Eastern", "Latino Hispanic", "Indian"}

// FeaturedPlayers picks up to three players per emotion: one from each
// race bucket in priority order while they last, then random unique
// players from the remainder. A player is never featured twice within
// an emotion.
func FeaturedPlayers(rows []analysis.JoinedRow) map[string][]analysis.JoinedRow {
	valid := ValidEmotionRows(rows)

	featured := map[string][]analysis.JoinedRow{}
	for _, emotion := range EmotionOrder {
		var pool []analysis.JoinedRow
		for _, row := range valid {
			if row.Analysis.InferredEmotion == emotion {
				pool = append(pool, row)
			}
		}
		featured[emotion] = pickDiverse(pool)
	}
	return featured
}

func pickDiverse(pool []analysis.JoinedRow) []analysis.JoinedRow {
	var selected []analysis.JoinedRow
	picked := map[string]bool{}

	take := func(candidates []analysis.JoinedRow) {
		if len(candidates) == 0 {
			return
		}
		i := 0
		if len(candidates) > 1 {
			n, err := random.IntRange(0, len(candidates))
			if err == nil {
				i = n
			}
		}
		row := candidates[i]
		selected = append(selected, row)
		picked[row.Chart.PlayerUID] = true
	}

	for _, race := range featuredRacePriority {
		if len(selected) >= featuredPerEmotion {
			break
		}
		var candidates []analysis.JoinedRow
		for _, row := range pool {
			if row.Analysis.InferredRace == race && !picked[row.Chart.PlayerUID] {
				candidates = append(candidates, row)
			}
		}
		take(candidates)
	}

	for len(selected) < featuredPerEmotion {
		var remaining []analysis.JoinedRow
		for _, row := range pool {
			if !picked[row.Chart.PlayerUID] {
				remaining = append(remaining, row)
			}
		}
		if len(remaining) == 0 {
			break
		}
		take(remaining)
	}
	return selected
}
