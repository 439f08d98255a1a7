package report

import (
	"fmt"
	"io"

	"gridiron-backend/services/analysis"
	"gridiron-backend/services/biostats"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	return t
}

// WriteAgeDisparityTables prints the players inferred oldest and
// youngest relative to their real age.
func WriteAgeDisparityTables(out io.Writer, older, younger []biostats.Disparity, year int) {
	for _, section := range []struct {
		title string
		rows  []biostats.Disparity
	}{
		{fmt.Sprintf("Players Inferred OLDER Than Actual Age (as of %d)", year), older},
		{fmt.Sprintf("Players Inferred YOUNGER Than Actual Age (as of %d)", year), younger},
	} {
		t := newTable(out, section.title)
		t.AppendHeader(table.Row{"Player", "Team", "Inferred Age", "Actual Age", "Disparity"})
		for _, d := range section.rows {
			t.AppendRow(table.Row{d.PlayerName, d.TeamName, d.InferredAge, d.ActualAge, d.Disparity})
		}
		t.Render()
	}
}

// WriteEmotionByRaceTable prints the normalized emotion distribution
// per simplified race group.
func WriteEmotionByRaceTable(out io.Writer, rows []analysis.JoinedRow) {
	distribution := EmotionDistributionByRace(rows)

	t := newTable(out, "Emotion Distribution by Race Group")
	header := table.Row{"Race Group", "Players"}
	for _, emotion := range EmotionOrder {
		header = append(header, emotion)
	}
	t.AppendHeader(header)

	for _, race := range SimplifiedRaceOrder {
		percents, ok := distribution.Percents[race]
		if !ok {
			continue
		}
		row := table.Row{race, distribution.Totals[race]}
		for _, emotion := range EmotionOrder {
			row = append(row, fmt.Sprintf("%.2f%% (%d)",
				percents[emotion], distribution.Counts[race][emotion]))
		}
		t.AppendRow(row)
	}
	t.Render()
}

// WriteTeamTables prints per-team happiness and White-vs-Black counts.
func WriteTeamTables(out io.Writer, rows []analysis.JoinedRow) {
	happiness := newTable(out, "Team Emotion Counts")
	happiness.AppendHeader(table.Row{"Team", "Happy", "Other Emotions"})
	for _, team := range TeamHappinessCounts(rows) {
		happiness.AppendRow(table.Row{team.TeamName, team.Happy, team.Other})
	}
	happiness.Render()

	races := newTable(out, "White vs Black Players per Team")
	races.AppendHeader(table.Row{"Team", "White", "Black"})
	for _, team := range WhiteVsBlackByTeam(rows) {
		races.AppendRow(table.Row{team.TeamName, team.White, team.Black})
	}
	races.Render()
}

// WriteRaceCompositionTables prints overall and per-unit race
// composition.
func WriteRaceCompositionTables(out io.Writer, rows []analysis.JoinedRow) {
	overall := newTable(out, "Overall Race Composition")
	overall.AppendHeader(table.Row{"Race", "Players", "Percent"})
	for _, entry := range RaceComposition(rows) {
		overall.AppendRow(table.Row{entry.Label, entry.Count, fmt.Sprintf("%.2f%%", entry.Percent)})
	}
	overall.Render()

	byUnit := RaceCompositionByUnit(rows)
	for _, unit := range sortedKeys(byUnit) {
		t := newTable(out, fmt.Sprintf("%s Race Composition", unit))
		t.AppendHeader(table.Row{"Race", "Players", "Percent"})
		for _, entry := range byUnit[unit] {
			t.AppendRow(table.Row{entry.Label, entry.Count, fmt.Sprintf("%.2f%%", entry.Percent)})
		}
		t.Render()
	}
}
