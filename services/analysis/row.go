// Package analysis runs the scrape-and-infer pipeline over depth chart
// rows and reconciles result CSVs from repeated runs keyed by PlayerUID.
package analysis

import (
	"strings"
)

// Fields is the canonical column order for results CSVs.
var Fields = []string{
	"PlayerName", "PlayerUID",
	"InferredRace", "RaceConfidence", "InferredAge",
	"InferredEmotion", "EmotionConfidence",
	"PlayerHeightWeight", "PlayerBirthdate", "PlayerCollege",
	"PlayerDraftInfo", "PlayerOverallStatus",
	"PlayerURL",
}

// Failure statuses recorded in place of values. Anything with one of
// the FailurePrefixes also counts as a failure, so transport error
// text can be stored verbatim.
const (
	StatusNA              = "N/A"
	StatusNoURL           = "N/A (No URL)"
	StatusScrapeFailed    = "N/A (Scrape Failed)"
	StatusEmptyDownload   = "N/A (Empty Download)"
	StatusNoProbabilities = "N/A (No Probabilities)"
	StatusNoFace          = "N/A (No Face Detected)"
	StatusBioScrapeFailed = "N/A (Bio Scrape Failed)"
	StatusSkipped         = "N/A (Skipped/Default)"
)

var failurePrefixes = []string{"N/A (", "Error:", "CRITICAL ERROR:"}

type Row struct {
	PlayerName          string
	PlayerUID           string
	InferredRace        string
	RaceConfidence      string
	InferredAge         string
	InferredEmotion     string
	EmotionConfidence   string
	PlayerHeightWeight  string
	PlayerBirthdate     string
	PlayerCollege       string
	PlayerDraftInfo     string
	PlayerOverallStatus string
	PlayerURL           string
}

func FromMap(m map[string]string) Row {
	return Row{
		PlayerName:          m["PlayerName"],
		PlayerUID:           m["PlayerUID"],
		InferredRace:        m["InferredRace"],
		RaceConfidence:      m["RaceConfidence"],
		InferredAge:         m["InferredAge"],
		InferredEmotion:     m["InferredEmotion"],
		EmotionConfidence:   m["EmotionConfidence"],
		PlayerHeightWeight:  m["PlayerHeightWeight"],
		PlayerBirthdate:     m["PlayerBirthdate"],
		PlayerCollege:       m["PlayerCollege"],
		PlayerDraftInfo:     m["PlayerDraftInfo"],
		PlayerOverallStatus: m["PlayerOverallStatus"],
		PlayerURL:           m["PlayerURL"],
	}
}

func (r Row) ToMap() map[string]string {
	return map[string]string{
		"PlayerName":          r.PlayerName,
		"PlayerUID":           r.PlayerUID,
		"InferredRace":        r.InferredRace,
		"RaceConfidence":      r.RaceConfidence,
		"InferredAge":         r.InferredAge,
		"InferredEmotion":     r.InferredEmotion,
		"EmotionConfidence":   r.EmotionConfidence,
		"PlayerHeightWeight":  r.PlayerHeightWeight,
		"PlayerBirthdate":     r.PlayerBirthdate,
		"PlayerCollege":       r.PlayerCollege,
		"PlayerDraftInfo":     r.PlayerDraftInfo,
		"PlayerOverallStatus": r.PlayerOverallStatus,
		"PlayerURL":           r.PlayerURL,
	}
}

// ValidValue reports whether a cell holds real data rather than a
// failure status.
func ValidValue(s string) bool {
	if s == "" || s == StatusNA {
		return false
	}
	for _, prefix := range failurePrefixes {
		if strings.HasPrefix(s, prefix) {
			return false
		}
	}
	return true
}

// Complete reports whether a row needs no further scraping: all three
// inferred attributes and all five bio fields hold valid data.
func Complete(r Row) bool {
	return ValidValue(r.InferredRace) &&
		ValidValue(r.InferredAge) &&
		ValidValue(r.InferredEmotion) &&
		ValidValue(r.PlayerHeightWeight) &&
		ValidValue(r.PlayerBirthdate) &&
		ValidValue(r.PlayerCollege) &&
		ValidValue(r.PlayerDraftInfo) &&
		ValidValue(r.PlayerOverallStatus)
}
