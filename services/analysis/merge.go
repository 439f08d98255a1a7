package analysis

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"gridiron-backend/lib/csvkit"
	"gridiron-backend/services/depthchart"
)

// ReadResults loads a results CSV written by the runner or a merge.
func ReadResults(path string) ([]Row, error) {
	_, records, err := csvkit.Read(path)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = FromMap(record)
	}
	return rows, nil
}

func WriteResults(path string, rows []Row) error {
	records := make([]map[string]string, len(rows))
	for i, row := range rows {
		records[i] = row.ToMap()
	}
	return csvkit.WriteAll(path, Fields, records)
}

// LoadCompletedUIDs reads a previous results file and returns the UIDs
// whose rows are already Complete, so a rerun can skip them. A missing
// or unreadable file just means nothing is completed yet.
func LoadCompletedUIDs(ctx context.Context, path string) map[string]bool {
	completed := map[string]bool{}

	rows, err := ReadResults(path)
	if os.IsNotExist(err) {
		return completed
	}
	if err != nil {
		slog.WarnContext(ctx, "could not read previous results, starting over",
			"path", path, "err", err)
		return completed
	}

	for _, row := range rows {
		if row.PlayerUID != "" && Complete(row) {
			completed[row.PlayerUID] = true
		}
	}
	return completed
}

// BetterRow keeps old unless new holds valid inference data and old
// does not. Two valid rows keep the first seen, so earlier files take
// priority in a merge.
func BetterRow(old, new Row) Row {
	if ValidValue(new.InferredRace) && !ValidValue(old.InferredRace) {
		return new
	}
	return old
}

// MergeRows folds rows from one or more result files into one row per
// UID using BetterRow, preserving first-seen UID order. Rows without a
// UID cannot be reconciled and are dropped.
func MergeRows(ctx context.Context, rows []Row) []Row {
	byUID := map[string]int{}
	var merged []Row

	for _, row := range rows {
		if row.PlayerUID == "" {
			slog.WarnContext(ctx, "dropping result row without a player uid",
				"player", row.PlayerName)
			continue
		}
		if i, ok := byUID[row.PlayerUID]; ok {
			merged[i] = BetterRow(merged[i], row)
			continue
		}
		byUID[row.PlayerUID] = len(merged)
		merged = append(merged, row)
	}
	return merged
}

// JoinedFields is the column order for joined chart × results CSVs.
var JoinedFields = []string{
	"TeamName", "Position", "Slot", "PlayerName", "PlayerUID", "PlayerURL",
	"InferredRace", "RaceConfidence", "InferredAge",
	"InferredEmotion", "EmotionConfidence",
	"PlayerHeightWeight", "PlayerBirthdate", "PlayerCollege",
	"PlayerDraftInfo", "PlayerOverallStatus",
}

// JoinedRow is one master chart row with its analysis columns attached.
type JoinedRow struct {
	Chart    depthchart.Row
	Analysis Row
}

// JoinChart left-joins the master chart against results on PlayerUID.
// A result's PlayerURL replaces the chart's when present; chart rows
// with no matching result keep empty analysis columns.
func JoinChart(chart []depthchart.Row, results []Row) []JoinedRow {
	byUID := make(map[string]Row, len(results))
	for _, row := range results {
		if row.PlayerUID == "" {
			continue
		}
		if _, ok := byUID[row.PlayerUID]; !ok {
			byUID[row.PlayerUID] = row
		}
	}

	joined := make([]JoinedRow, len(chart))
	for i, chartRow := range chart {
		j := JoinedRow{Chart: chartRow}
		if result, ok := byUID[chartRow.PlayerUID]; ok && chartRow.PlayerUID != "" {
			j.Analysis = result
			if result.PlayerURL != "" {
				j.Chart.PlayerURL = result.PlayerURL
			}
		}
		joined[i] = j
	}
	return joined
}

func (j JoinedRow) ToMap() map[string]string {
	m := j.Analysis.ToMap()
	delete(m, "PlayerName")
	delete(m, "PlayerUID")
	delete(m, "PlayerURL")
	m["TeamName"] = j.Chart.TeamName
	m["Position"] = j.Chart.Position
	m["Slot"] = strconv.Itoa(j.Chart.Slot)
	m["PlayerName"] = j.Chart.PlayerName
	m["PlayerUID"] = j.Chart.PlayerUID
	m["PlayerURL"] = j.Chart.PlayerURL
	return m
}

func JoinedFromMap(m map[string]string) JoinedRow {
	row := FromMap(m)
	slot, _ := strconv.Atoi(m["Slot"])
	return JoinedRow{
		Chart: depthchart.Row{
			TeamName:   m["TeamName"],
			Position:   m["Position"],
			Slot:       slot,
			PlayerName: m["PlayerName"],
			PlayerUID:  m["PlayerUID"],
			PlayerURL:  m["PlayerURL"],
		},
		Analysis: row,
	}
}

func ReadJoined(path string) ([]JoinedRow, error) {
	_, records, err := csvkit.Read(path)
	if err != nil {
		return nil, err
	}
	rows := make([]JoinedRow, len(records))
	for i, record := range records {
		rows[i] = JoinedFromMap(record)
	}
	return rows, nil
}

func WriteJoined(path string, rows []JoinedRow) error {
	records := make([]map[string]string, len(rows))
	for i, row := range rows {
		records[i] = row.ToMap()
	}
	return csvkit.WriteAll(path, JoinedFields, records)
}
