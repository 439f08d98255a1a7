package report

import (
	"gridiron-backend/lib/scrapers/espn"
	"gridiron-backend/services/analysis"
	"gridiron-backend/services/namelink"
)

// links below this similarity are noise, those names stay as scraped
const minTeamNameCorrelation = 0.9

// CanonicalTeamNames rewrites each row's team name to its canonical
// spelling. Charts merged across seasons carry variants like
// "San Francisco 49Ers" that would otherwise aggregate as separate
// teams.
func CanonicalTeamNames(rows []analysis.JoinedRow) []analysis.JoinedRow {
	seen := map[string]bool{}
	var scraped []string
	for _, row := range rows {
		name := row.Chart.TeamName
		if name != "" && !seen[name] {
			seen[name] = true
			scraped = append(scraped, name)
		}
	}

	mapping := namelink.Canonicalize(scraped, espn.TeamNames(), minTeamNameCorrelation)
	normalized := make([]analysis.JoinedRow, len(rows))
	for i, row := range rows {
		if canonical, ok := mapping[row.Chart.TeamName]; ok {
			row.Chart.TeamName = canonical
		}
		normalized[i] = row
	}
	return normalized
}
