package biostats

import (
	"testing"

	"gridiron-backend/services/analysis"
	"gridiron-backend/services/depthchart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightToInches(t *testing.T) {
	cases := []struct {
		input  string
		inches int
		ok     bool
	}{
		{`6' 8"`, 80, true},
		{`6'8`, 80, true},
		{`6'`, 72, true},
		{`5' 10"`, 70, true},
		{"N/A", 0, false},
		{"N/A (Bio Scrape Failed)", 0, false},
		{"", 0, false},
		{"tall", 0, false},
	}
	for _, c := range cases {
		inches, ok := HeightToInches(c.input)
		assert.Equal(t, c.ok, ok, "input %q", c.input)
		assert.Equal(t, c.inches, inches, "input %q", c.input)
	}
}

func TestParseHeightWeight(t *testing.T) {
	inches, heightOk, lbs, weightOk := ParseHeightWeight(`6' 4", 240 lbs`)
	require.True(t, heightOk)
	require.True(t, weightOk)
	assert.Equal(t, 76, inches)
	assert.Equal(t, 240, lbs)

	// height only
	inches, heightOk, _, weightOk = ParseHeightWeight(`6' 2"`)
	assert.True(t, heightOk)
	assert.False(t, weightOk)
	assert.Equal(t, 74, inches)

	// weight only
	_, heightOk, lbs, weightOk = ParseHeightWeight("305 lbs")
	assert.False(t, heightOk)
	assert.True(t, weightOk)
	assert.Equal(t, 305, lbs)

	_, heightOk, _, weightOk = ParseHeightWeight("N/A")
	assert.False(t, heightOk)
	assert.False(t, weightOk)
}

func TestParseDraft(t *testing.T) {
	assert.Equal(t, Draft{
		Year: "2018", Position: "Rd 1, Pk 7", Organization: "BUF",
	}, ParseDraft("2018: Rd 1, Pk 7 (BUF)"))

	assert.Equal(t, Draft{
		Position: "Undrafted", Organization: "Undrafted",
	}, ParseDraft("Undrafted"))

	assert.Equal(t, Draft{
		Position: "Signed", Organization: "CAR",
	}, ParseDraft("Signed (CAR)"))

	assert.Equal(t, Draft{}, ParseDraft("N/A (Bio Scrape Failed)"))
	assert.Equal(t, Draft{}, ParseDraft("2023"))
}

func TestExpand(t *testing.T) {
	rows := []analysis.Row{
		{
			PlayerName:         "Bryce Young",
			PlayerUID:          "1",
			PlayerHeightWeight: `5' 10", 204 lbs`,
			PlayerDraftInfo:    "2023: Rd 1, Pk 1 (CAR)",
		},
		{
			PlayerName:         "X",
			PlayerUID:          "2",
			PlayerHeightWeight: "N/A (Bio Scrape Failed)",
			PlayerDraftInfo:    "Undrafted",
		},
	}

	expanded := Expand(rows)
	require.Len(t, expanded, 2)

	assert.Equal(t, "70", expanded[0]["PlayerHeightInches"])
	assert.Equal(t, "204", expanded[0]["PlayerWeightLBS"])
	assert.Equal(t, "2023", expanded[0]["DraftYear"])
	assert.Equal(t, "Rd 1, Pk 1", expanded[0]["DraftPosition"])
	assert.Equal(t, "CAR", expanded[0]["DraftOrganization"])
	_, hasOld := expanded[0]["PlayerHeightWeight"]
	assert.False(t, hasOld)

	assert.Equal(t, "", expanded[1]["PlayerHeightInches"])
	assert.Equal(t, "", expanded[1]["DraftYear"])
	assert.Equal(t, "Undrafted", expanded[1]["DraftOrganization"])
}

func TestBirthYear(t *testing.T) {
	year, ok := BirthYear("7/25/2001 (24)")
	require.True(t, ok)
	assert.Equal(t, 2001, year)

	year, ok = BirthYear("July 25, 2001")
	require.True(t, ok)
	assert.Equal(t, 2001, year)

	_, ok = BirthYear("N/A")
	assert.False(t, ok)
}

func joinedWithAges(name string, inferredAge, birthYear string) analysis.JoinedRow {
	return analysis.JoinedRow{
		Chart: depthchart.Row{PlayerName: name, TeamName: "Carolina Panthers"},
		Analysis: analysis.Row{
			PlayerName:      name,
			InferredAge:     inferredAge,
			PlayerBirthdate: "1/1/" + birthYear,
		},
	}
}

func TestAgeDisparity(t *testing.T) {
	rows := []analysis.JoinedRow{
		joinedWithAges("MuchOlder", "40", "1995"),   // actual 30, +10
		joinedWithAges("Older", "33", "1995"),       // actual 30, +3
		joinedWithAges("Exact", "30", "1995"),       // 0
		joinedWithAges("Younger", "25", "1995"),     // -5
		joinedWithAges("MuchYounger", "20", "1995"), // -10
		joinedWithAges("NoAge", "N/A (No Face Detected)", "1995"),
		{Analysis: analysis.Row{InferredAge: "30", PlayerBirthdate: "N/A"}},
	}

	older, younger := AgeDisparity(rows, 2025, 2)

	require.Len(t, older, 2)
	assert.Equal(t, "MuchOlder", older[0].PlayerName)
	assert.Equal(t, 10, older[0].Disparity)
	assert.Equal(t, "Older", older[1].PlayerName)

	require.Len(t, younger, 2)
	assert.Equal(t, "MuchYounger", younger[0].PlayerName)
	assert.Equal(t, -10, younger[0].Disparity)
	assert.Equal(t, "Younger", younger[1].PlayerName)
}
