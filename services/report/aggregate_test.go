package report

import (
	"testing"

	"gridiron-backend/services/analysis"
	"gridiron-backend/services/depthchart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(team, position, name, uid, race, emotion string) analysis.JoinedRow {
	return analysis.JoinedRow{
		Chart: depthchart.Row{
			TeamName: team, Position: position, PlayerName: name, PlayerUID: uid,
		},
		Analysis: analysis.Row{
			PlayerName: name, PlayerUID: uid,
			InferredRace: race, InferredEmotion: emotion,
		},
	}
}

func sampleRows() []analysis.JoinedRow {
	return []analysis.JoinedRow{
		player("Carolina Panthers", "QB", "A", "1", "Black", "Happy"),
		player("Carolina Panthers", "RB", "B", "2", "White", "Neutral"),
		player("Carolina Panthers", "LT", "C", "3", "Black", "Happy"),
		player("Atlanta Falcons", "CB", "D", "4", "Asian", "Sad"),
		player("Atlanta Falcons", "PK", "E", "5", "White", "Happy"),
		// filtered out: placeholder slot, failed race, failed emotion
		player("Atlanta Falcons", "WR", "-", "", "Black", "Happy"),
		player("Atlanta Falcons", "WR", "F", "6", "N/A (No Face Detected)", "Happy"),
		player("Atlanta Falcons", "TE", "G", "7", "Black", "N/A (No Probabilities)"),
	}
}

func TestValidRows(t *testing.T) {
	valid := ValidRows(sampleRows())
	require.Len(t, valid, 6)
	emotional := ValidEmotionRows(sampleRows())
	require.Len(t, emotional, 5)
}

func TestEmotionCounts(t *testing.T) {
	counts := EmotionCounts(sampleRows())
	// [Happy, Neutral, Sad, Angry, Surprise, Fear, Disgust]
	assert.Equal(t, []int{3, 1, 1, 0, 0, 0, 0}, counts)
}

func TestTeamHappinessCounts(t *testing.T) {
	teams := TeamHappinessCounts(sampleRows())
	require.Len(t, teams, 2)
	assert.Equal(t, TeamHappiness{TeamName: "Atlanta Falcons", Happy: 1, Other: 1}, teams[0])
	assert.Equal(t, TeamHappiness{TeamName: "Carolina Panthers", Happy: 2, Other: 1}, teams[1])
}

func TestUnit(t *testing.T) {
	assert.Equal(t, "Offense", Unit("QB"))
	assert.Equal(t, "Offense", Unit("lt"))
	assert.Equal(t, "Defense", Unit("CB"))
	assert.Equal(t, "Special Teams", Unit("PK"))
	assert.Equal(t, "Other", Unit("COACH"))
	assert.Equal(t, "Unknown", Unit(""))
}

func TestRaceComposition(t *testing.T) {
	composition := RaceComposition(sampleRows())
	require.Len(t, composition, 3)
	assert.Equal(t, "Black", composition[0].Label)
	assert.Equal(t, 3, composition[0].Count)
	assert.InDelta(t, 50.0, composition[0].Percent, 0.001)
	assert.Equal(t, "White", composition[1].Label)
	assert.Equal(t, "Asian", composition[2].Label)
}

func TestRaceCompositionByUnit(t *testing.T) {
	byUnit := RaceCompositionByUnit(sampleRows())
	offense := byUnit["Offense"]
	require.NotEmpty(t, offense)
	assert.Equal(t, "Black", offense[0].Label)
	assert.Equal(t, 2, offense[0].Count)

	require.Contains(t, byUnit, "Defense")
	require.Contains(t, byUnit, "Special Teams")
}

func TestRaceCompositionByGroup(t *testing.T) {
	byGroup := RaceCompositionByGroup(sampleRows())
	line := byGroup["Offensive Line"]
	require.Len(t, line, 1)
	assert.Equal(t, Composition{Label: "Black", Count: 1, Percent: 100}, line[0])

	secondary := byGroup["Secondary"]
	require.Len(t, secondary, 1)
	assert.Equal(t, "Asian", secondary[0].Label)

	_, hasLinebackers := byGroup["Linebackers"]
	assert.False(t, hasLinebackers)
}

func TestSimplifiedRace(t *testing.T) {
	assert.Equal(t, "Black", SimplifiedRace("Black"))
	assert.Equal(t, "White", SimplifiedRace("White"))
	assert.Equal(t, "Other", SimplifiedRace("Asian"))
	assert.Equal(t, "Other", SimplifiedRace("Latino Hispanic"))
}

func TestEmotionDistributionByRace(t *testing.T) {
	distribution := EmotionDistributionByRace(sampleRows())

	assert.Equal(t, 2, distribution.Totals["Black"])
	assert.Equal(t, 2, distribution.Totals["White"])
	assert.Equal(t, 1, distribution.Totals["Other"])

	assert.InDelta(t, 100.0, distribution.Percents["Black"]["Happy"], 0.001)
	assert.InDelta(t, 50.0, distribution.Percents["White"]["Happy"], 0.001)
	assert.InDelta(t, 50.0, distribution.Percents["White"]["Neutral"], 0.001)
	assert.InDelta(t, 100.0, distribution.Percents["Other"]["Sad"], 0.001)
}

func TestWhiteVsBlackByTeam(t *testing.T) {
	teams := WhiteVsBlackByTeam(sampleRows())
	require.Len(t, teams, 2)
	// G counts: only the race inference needs to be valid here
	assert.Equal(t, TeamRaceCounts{TeamName: "Atlanta Falcons", White: 1, Black: 1}, teams[0])
	assert.Equal(t, TeamRaceCounts{TeamName: "Carolina Panthers", White: 1, Black: 2}, teams[1])
}

func TestFeaturedPlayers(t *testing.T) {
	rows := []analysis.JoinedRow{
		player("T", "QB", "B1", "1", "Black", "Happy"),
		player("T", "QB", "B2", "2", "Black", "Happy"),
		player("T", "QB", "W1", "3", "White", "Happy"),
		player("T", "QB", "A1", "4", "Asian", "Happy"),
		player("T", "QB", "S1", "5", "Black", "Sad"),
	}

	featured := FeaturedPlayers(rows)

	happy := featured["Happy"]
	require.Len(t, happy, 3)
	races := map[string]int{}
	seen := map[string]bool{}
	for _, row := range happy {
		races[row.Analysis.InferredRace]++
		require.False(t, seen[row.Chart.PlayerUID], "player featured twice")
		seen[row.Chart.PlayerUID] = true
	}
	// one per race bucket before any repeats
	assert.Equal(t, 1, races["White"])
	assert.Equal(t, 1, races["Asian"])
	assert.Equal(t, 1, races["Black"])

	require.Len(t, featured["Sad"], 1)
	assert.Empty(t, featured["Disgust"])
}
