// Package report aggregates joined depth-chart/inference rows into
// demographic and emotional breakdowns and renders them as terminal
// tables, chart pages, an HTML report, and email.
package report

import (
	"sort"
	"strings"

	"gridiron-backend/services/analysis"
)

// EmotionOrder is the fixed display order for inferred emotions.
var EmotionOrder = []string{"Happy", "Neutral", "Sad", "Angry", "Surprise", "Fear", "Disgust"}

func validEmotion(emotion string) bool {
	for _, e := range EmotionOrder {
		if emotion == e {
			return true
		}
	}
	return false
}

// ValidRows filters out rows whose race inference failed and
// placeholder depth chart slots.
func ValidRows(rows []analysis.JoinedRow) []analysis.JoinedRow {
	var valid []analysis.JoinedRow
	for _, row := range rows {
		if !analysis.ValidValue(row.Analysis.InferredRace) {
			continue
		}
		if row.Chart.PlayerName == "" || row.Chart.PlayerName == "-" {
			continue
		}
		valid = append(valid, row)
	}
	return valid
}

// ValidEmotionRows additionally requires a recognized emotion label.
func ValidEmotionRows(rows []analysis.JoinedRow) []analysis.JoinedRow {
	var valid []analysis.JoinedRow
	for _, row := range ValidRows(rows) {
		if validEmotion(row.Analysis.InferredEmotion) {
			valid = append(valid, row)
		}
	}
	return valid
}

// EmotionCounts counts players per emotion, aligned with EmotionOrder.
func EmotionCounts(rows []analysis.JoinedRow) []int {
	byEmotion := map[string]int{}
	for _, row := range ValidEmotionRows(rows) {
		byEmotion[row.Analysis.InferredEmotion]++
	}
	counts := make([]int, len(EmotionOrder))
	for i, emotion := range EmotionOrder {
		counts[i] = byEmotion[emotion]
	}
	return counts
}

type TeamHappiness struct {
	TeamName string
	Happy    int
	Other    int
}

// TeamHappinessCounts splits each team's players into Happy vs every
// other emotion. Teams come back sorted by name.
func TeamHappinessCounts(rows []analysis.JoinedRow) []TeamHappiness {
	byTeam := map[string]*TeamHappiness{}
	for _, row := range ValidEmotionRows(rows) {
		team := row.Chart.TeamName
		if team == "" {
			continue
		}
		entry, ok := byTeam[team]
		if !ok {
			entry = &TeamHappiness{TeamName: team}
			byTeam[team] = entry
		}
		if row.Analysis.InferredEmotion == "Happy" {
			entry.Happy++
		} else {
			entry.Other++
		}
	}

	teams := make([]TeamHappiness, 0, len(byTeam))
	for _, entry := range byTeam {
		teams = append(teams, *entry)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].TeamName < teams[j].TeamName
	})
	return teams
}

var offensivePositions = positionSet("QB", "RB", "FB", "WR", "TE", "LT", "LG", "C", "RG", "RT", "OG", "OT", "OC", "G", "T", "OL")
var defensivePositions = positionSet("DE", "DT", "NT", "LDE", "RDE", "LDT", "RDT", "MLB", "WLB", "SLB", "CB", "LCB", "RCB", "SS", "FS", "S", "DB", "LB", "DL", "EDGE")
var specialTeamsPositions = positionSet("PK", "P", "H", "LS", "PR", "KR", "K")

// PositionGroups maps broad position groups to their member positions.
var PositionGroups = map[string][]string{
	"Offensive Line": {"LT", "LG", "C", "RG", "RT", "OG", "OT", "OC", "G", "T", "OL"},
	"Defensive Line": {"DE", "DT", "NT", "LDE", "RDE", "LDT", "RDT", "DL"},
	"Linebackers":    {"MLB", "WLB", "SLB", "LB", "EDGE"},
	"Secondary":      {"CB", "LCB", "RCB", "SS", "FS", "S", "DB"},
}

func positionSet(positions ...string) map[string]bool {
	set := make(map[string]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	return set
}

// Unit classifies a depth chart position into Offense, Defense,
// Special Teams, Other, or Unknown.
func Unit(position string) string {
	if position == "" {
		return "Unknown"
	}
	pos := strings.ToUpper(position)
	switch {
	case offensivePositions[pos]:
		return "Offense"
	case defensivePositions[pos]:
		return "Defense"
	case specialTeamsPositions[pos]:
		return "Special Teams"
	}
	return "Other"
}

type Composition struct {
	Label   string
	Count   int
	Percent float64
}

func compose(counts map[string]int) []Composition {
	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return nil
	}

	result := make([]Composition, 0, len(counts))
	for label, count := range counts {
		result = append(result, Composition{
			Label:   label,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})
	return result
}

// RaceComposition is the overall race breakdown, largest group first.
func RaceComposition(rows []analysis.JoinedRow) []Composition {
	counts := map[string]int{}
	for _, row := range ValidRows(rows) {
		counts[row.Analysis.InferredRace]++
	}
	return compose(counts)
}

// RaceCompositionByUnit breaks races down per Offense/Defense/Special
// Teams unit.
func RaceCompositionByUnit(rows []analysis.JoinedRow) map[string][]Composition {
	byUnit := map[string]map[string]int{}
	for _, row := range ValidRows(rows) {
		unit := Unit(row.Chart.Position)
		if byUnit[unit] == nil {
			byUnit[unit] = map[string]int{}
		}
		byUnit[unit][row.Analysis.InferredRace]++
	}

	result := map[string][]Composition{}
	for unit, counts := range byUnit {
		result[unit] = compose(counts)
	}
	return result
}

// RaceCompositionByGroup breaks races down per broad position group
// (offensive line, secondary, ...).
func RaceCompositionByGroup(rows []analysis.JoinedRow) map[string][]Composition {
	result := map[string][]Composition{}
	for group, positions := range PositionGroups {
		member := positionSet(positions...)
		counts := map[string]int{}
		for _, row := range ValidRows(rows) {
			if member[strings.ToUpper(row.Chart.Position)] {
				counts[row.Analysis.InferredRace]++
			}
		}
		if len(counts) > 0 {
			result[group] = compose(counts)
		}
	}
	return result
}

// RaceCompositionByPosition breaks races down per individual position.
func RaceCompositionByPosition(rows []analysis.JoinedRow) map[string][]Composition {
	byPosition := map[string]map[string]int{}
	for _, row := range ValidRows(rows) {
		position := strings.ToUpper(row.Chart.Position)
		if position == "" || position == "-" {
			continue
		}
		if byPosition[position] == nil {
			byPosition[position] = map[string]int{}
		}
		byPosition[position][row.Analysis.InferredRace]++
	}

	result := map[string][]Composition{}
	for position, counts := range byPosition {
		result[position] = compose(counts)
	}
	return result
}

// SimplifiedRace buckets every race label into Black, White, or Other.
func SimplifiedRace(race string) string {
	if race == "Black" || race == "White" {
		return race
	}
	return "Other"
}

// SimplifiedRaceOrder is the display order for simplified race groups.
var SimplifiedRaceOrder = []string{"Black", "White", "Other"}

type EmotionByRace struct {
	// counts[race][emotion]
	Counts map[string]map[string]int
	// percentages normalized within each race group, rows sum to 100
	Percents map[string]map[string]float64
	// total players per race group
	Totals map[string]int
}

// EmotionDistributionByRace computes the emotion distribution within
// each simplified race group.
func EmotionDistributionByRace(rows []analysis.JoinedRow) EmotionByRace {
	result := EmotionByRace{
		Counts:   map[string]map[string]int{},
		Percents: map[string]map[string]float64{},
		Totals:   map[string]int{},
	}
	for _, row := range ValidEmotionRows(rows) {
		race := SimplifiedRace(row.Analysis.InferredRace)
		if result.Counts[race] == nil {
			result.Counts[race] = map[string]int{}
		}
		result.Counts[race][row.Analysis.InferredEmotion]++
		result.Totals[race]++
	}

	for race, counts := range result.Counts {
		result.Percents[race] = map[string]float64{}
		total := result.Totals[race]
		for _, emotion := range EmotionOrder {
			result.Percents[race][emotion] = float64(counts[emotion]) / float64(total) * 100
		}
	}
	return result
}

type TeamRaceCounts struct {
	TeamName string
	White    int
	Black    int
}

// WhiteVsBlackByTeam counts White and Black players per team, sorted
// by team name.
func WhiteVsBlackByTeam(rows []analysis.JoinedRow) []TeamRaceCounts {
	byTeam := map[string]*TeamRaceCounts{}
	for _, row := range ValidRows(rows) {
		team := row.Chart.TeamName
		if team == "" {
			continue
		}
		race := row.Analysis.InferredRace
		if race != "White" && race != "Black" {
			continue
		}
		entry, ok := byTeam[team]
		if !ok {
			entry = &TeamRaceCounts{TeamName: team}
			byTeam[team] = entry
		}
		if race == "White" {
			entry.White++
		} else {
			entry.Black++
		}
	}

	teams := make([]TeamRaceCounts, 0, len(byTeam))
	for _, entry := range byTeam {
		teams = append(teams, *entry)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].TeamName < teams[j].TeamName
	})
	return teams
}
