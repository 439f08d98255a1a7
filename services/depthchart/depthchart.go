// Package depthchart models team depth charts as CSV-backed rows and
// reconciles charts gathered from different runs.
package depthchart

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"gridiron-backend/lib/csvkit"
	"gridiron-backend/lib/scrapers/espn"
)

// Fields is the canonical column order for depth chart CSVs.
var Fields = []string{"TeamName", "Position", "Slot", "PlayerName", "PlayerUID", "PlayerURL"}

type Row struct {
	TeamName   string
	Position   string
	Slot       int
	PlayerName string
	PlayerUID  string
	PlayerURL  string
}

func fromMap(m map[string]string) Row {
	slot, _ := strconv.Atoi(m["Slot"])
	return Row{
		TeamName:   m["TeamName"],
		Position:   m["Position"],
		Slot:       slot,
		PlayerName: m["PlayerName"],
		PlayerUID:  m["PlayerUID"],
		PlayerURL:  m["PlayerURL"],
	}
}

func (r Row) toMap() map[string]string {
	return map[string]string{
		"TeamName":   r.TeamName,
		"Position":   r.Position,
		"Slot":       strconv.Itoa(r.Slot),
		"PlayerName": r.PlayerName,
		"PlayerUID":  r.PlayerUID,
		"PlayerURL":  r.PlayerURL,
	}
}

func FromSlots(slots []espn.DepthSlot) []Row {
	rows := make([]Row, len(slots))
	for i, slot := range slots {
		rows[i] = Row(slot)
	}
	return rows
}

func ReadChart(path string) ([]Row, error) {
	_, records, err := csvkit.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read depth chart %s: %w", path, err)
	}
	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = fromMap(record)
	}
	return rows, nil
}

func WriteChart(path string, rows []Row) error {
	records := make([]map[string]string, len(rows))
	for i, row := range rows {
		records[i] = row.toMap()
	}
	return csvkit.WriteAll(path, Fields, records)
}

// MergeCharts concatenates base and overlay de-duplicated by PlayerUID,
// the last occurrence of a UID winning. Rows without a UID are
// placeholder slots and are always kept. Order is first-seen: base rows
// first, then overlay rows whose UID base never mentioned.
func MergeCharts(ctx context.Context, base, overlay []Row) []Row {
	type entry struct {
		index int
		row   Row
	}
	byUID := map[string]*entry{}

	var merged []Row
	for _, row := range append(append([]Row{}, base...), overlay...) {
		if row.PlayerUID == "" {
			merged = append(merged, row)
			continue
		}
		if existing, ok := byUID[row.PlayerUID]; ok {
			slog.DebugContext(ctx, "replacing duplicate depth chart row",
				"uid", row.PlayerUID, "player", row.PlayerName)
			existing.row = row
			continue
		}
		merged = append(merged, Row{})
		byUID[row.PlayerUID] = &entry{index: len(merged) - 1, row: row}
	}

	for _, e := range byUID {
		merged[e.index] = e.row
	}
	return merged
}

func FilterTeam(rows []Row, teamName string) []Row {
	var filtered []Row
	for _, row := range rows {
		if row.TeamName == teamName {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
