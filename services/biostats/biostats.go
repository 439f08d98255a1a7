// Package biostats derives numeric stats from the free-text bio fields
// scraped off profile pages: height/weight splitting, draft info
// parsing, and inferred-vs-actual age disparity.
package biostats

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gridiron-backend/services/analysis"
)

var heightRegex = regexp.MustCompile(`(\d+)'\s*(\d+)?`)

// HeightToInches converts a height string like `6' 8"` to total
// inches. Missing inches (`6'`) count as zero.
func HeightToInches(s string) (int, bool) {
	if !analysis.ValidValue(s) {
		return 0, false
	}
	groups := heightRegex.FindStringSubmatch(strings.ReplaceAll(strings.TrimSpace(s), `"`, ""))
	if groups == nil {
		return 0, false
	}
	feet, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, false
	}
	inches := 0
	if groups[2] != "" {
		inches, err = strconv.Atoi(groups[2])
		if err != nil {
			return 0, false
		}
	}
	return feet*12 + inches, true
}

var weightRegex = regexp.MustCompile(`(\d+)\s*lbs`)

// ParseHeightWeight splits a combined `6' 4", 240 lbs` value. Either
// side can be missing; a lone value is classified by its format.
func ParseHeightWeight(s string) (heightInches int, heightOk bool, weightLbs int, weightOk bool) {
	if !analysis.ValidValue(s) {
		return 0, false, 0, false
	}

	var heightRaw, weightRaw string
	parts := strings.Split(s, ",")
	switch len(parts) {
	case 2:
		heightRaw = strings.TrimSpace(parts[0])
		weightRaw = strings.TrimSpace(parts[1])
	case 1:
		part := strings.TrimSpace(parts[0])
		if strings.ContainsAny(part, `'"`) {
			heightRaw = part
		} else if strings.Contains(part, "lbs") {
			weightRaw = part
		}
	}

	heightInches, heightOk = HeightToInches(heightRaw)

	if groups := weightRegex.FindStringSubmatch(weightRaw); groups != nil {
		if lbs, err := strconv.Atoi(groups[1]); err == nil {
			weightLbs, weightOk = lbs, true
		}
	} else if lbs, err := strconv.Atoi(weightRaw); err == nil && weightRaw != "" {
		weightLbs, weightOk = lbs, true
	}
	return heightInches, heightOk, weightLbs, weightOk
}

type Draft struct {
	Year         string
	Position     string
	Organization string
}

var draftRegex = regexp.MustCompile(`(\d{4}): Rd (\d+), Pk (\d+) \((.+)\)`)
var draftOrgRegex = regexp.MustCompile(`\((.+)\)`)

// ParseDraft splits a draft string like "2018: Rd 1, Pk 7 (BUF)".
// Undrafted and signed free agents have no year; everything missing
// stays empty.
func ParseDraft(s string) Draft {
	if !analysis.ValidValue(s) {
		return Draft{}
	}

	if groups := draftRegex.FindStringSubmatch(s); groups != nil {
		return Draft{
			Year:         groups[1],
			Position:     fmt.Sprintf("Rd %s, Pk %s", groups[2], groups[3]),
			Organization: groups[4],
		}
	}
	if strings.Contains(s, "Undrafted") {
		return Draft{Position: "Undrafted", Organization: "Undrafted"}
	}
	if strings.Contains(s, "Signed") {
		draft := Draft{Position: "Signed"}
		if groups := draftOrgRegex.FindStringSubmatch(s); groups != nil {
			draft.Organization = groups[1]
		}
		return draft
	}
	return Draft{}
}

// ProcessedFields is the column order for expanded bio CSVs.
var ProcessedFields = []string{
	"PlayerName", "PlayerUID", "InferredRace", "RaceConfidence",
	"InferredAge", "InferredEmotion", "EmotionConfidence",
	"PlayerHeightInches", "PlayerWeightLBS", "PlayerBirthdate",
	"PlayerCollege", "DraftYear", "DraftPosition", "DraftOrganization",
	"PlayerOverallStatus", "PlayerURL",
}

// Expand rewrites result rows, replacing the combined
// PlayerHeightWeight and PlayerDraftInfo columns with their parsed
// parts. Unparseable values leave the new columns empty.
func Expand(rows []analysis.Row) []map[string]string {
	expanded := make([]map[string]string, len(rows))
	for i, row := range rows {
		m := row.ToMap()
		delete(m, "PlayerHeightWeight")
		delete(m, "PlayerDraftInfo")

		m["PlayerHeightInches"] = ""
		m["PlayerWeightLBS"] = ""
		inches, heightOk, lbs, weightOk := ParseHeightWeight(row.PlayerHeightWeight)
		if heightOk {
			m["PlayerHeightInches"] = strconv.Itoa(inches)
		}
		if weightOk {
			m["PlayerWeightLBS"] = strconv.Itoa(lbs)
		}

		draft := ParseDraft(row.PlayerDraftInfo)
		m["DraftYear"] = draft.Year
		m["DraftPosition"] = draft.Position
		m["DraftOrganization"] = draft.Organization

		expanded[i] = m
	}
	return expanded
}

var yearRegex = regexp.MustCompile(`\b(\d{4})\b`)

// BirthYear extracts the year out of ESPN birthdate forms like
// "7/25/2001 (24)" or "July 25, 2001".
func BirthYear(birthdate string) (int, bool) {
	if !analysis.ValidValue(birthdate) {
		return 0, false
	}
	groups := yearRegex.FindStringSubmatch(birthdate)
	if groups == nil {
		return 0, false
	}
	year, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

type Disparity struct {
	PlayerName  string
	TeamName    string
	InferredAge int
	ActualAge   int
	// inferred minus actual, positive means inferred older
	Disparity int
}

// AgeDisparity compares inferred age against actual age (year minus
// birth year) and returns the top-n players inferred oldest relative
// to their real age, and the top-n inferred youngest. Rows missing
// either age are skipped.
func AgeDisparity(rows []analysis.JoinedRow, year, n int) (older, younger []Disparity) {
	var all []Disparity
	for _, row := range rows {
		inferred, err := strconv.Atoi(row.Analysis.InferredAge)
		if err != nil || inferred < 0 {
			continue
		}
		birthYear, ok := BirthYear(row.Analysis.PlayerBirthdate)
		if !ok {
			continue
		}
		actual := year - birthYear
		if actual < 0 {
			continue
		}
		all = append(all, Disparity{
			PlayerName:  row.Chart.PlayerName,
			TeamName:    row.Chart.TeamName,
			InferredAge: inferred,
			ActualAge:   actual,
			Disparity:   inferred - actual,
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Disparity > all[j].Disparity
	})
	for _, d := range all {
		if d.Disparity > 0 && len(older) < n {
			older = append(older, d)
		}
	}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Disparity < 0 && len(younger) < n {
			younger = append(younger, all[i])
		}
	}
	return older, younger
}
