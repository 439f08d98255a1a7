package analysis

import (
	"context"
	"database/sql"
	"errors"

	"gridiron-backend/lib/timezone"
	"gridiron-backend/services/analysis/db"
)

// Store mirrors result rows into sqlite so analysis survives lost or
// hand-edited CSVs. Writes go through BetterRow, an already-valid row
// is never clobbered by a failed rerun.
type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

func rowToPlayer(r Row) db.Player {
	return db.Player{
		PlayerUid:           r.PlayerUID,
		PlayerName:          r.PlayerName,
		InferredRace:        r.InferredRace,
		RaceConfidence:      r.RaceConfidence,
		InferredAge:         r.InferredAge,
		InferredEmotion:     r.InferredEmotion,
		EmotionConfidence:   r.EmotionConfidence,
		PlayerHeightWeight:  r.PlayerHeightWeight,
		PlayerBirthdate:     r.PlayerBirthdate,
		PlayerCollege:       r.PlayerCollege,
		PlayerDraftInfo:     r.PlayerDraftInfo,
		PlayerOverallStatus: r.PlayerOverallStatus,
		PlayerUrl:           r.PlayerURL,
	}
}

func playerToRow(p db.Player) Row {
	return Row{
		PlayerUID:           p.PlayerUid,
		PlayerName:          p.PlayerName,
		InferredRace:        p.InferredRace,
		RaceConfidence:      p.RaceConfidence,
		InferredAge:         p.InferredAge,
		InferredEmotion:     p.InferredEmotion,
		EmotionConfidence:   p.EmotionConfidence,
		PlayerHeightWeight:  p.PlayerHeightWeight,
		PlayerBirthdate:     p.PlayerBirthdate,
		PlayerCollege:       p.PlayerCollege,
		PlayerDraftInfo:     p.PlayerDraftInfo,
		PlayerOverallStatus: p.PlayerOverallStatus,
		PlayerURL:           p.PlayerUrl,
	}
}

// Upsert writes a row, keeping the stored version when BetterRow says
// it outranks the incoming one. Rows without a UID are not storable.
func (s Store) Upsert(ctx context.Context, row Row) error {
	if row.PlayerUID == "" {
		return nil
	}

	existing, err := s.qry.GetPlayer(ctx, row.PlayerUID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err == nil {
		row = BetterRow(playerToRow(existing), row)
	}

	player := rowToPlayer(row)
	player.UpdatedAt = timezone.Now().Unix()
	return s.qry.UpsertPlayer(ctx, player)
}

// List returns every stored row, oldest write first.
func (s Store) List(ctx context.Context) ([]Row, error) {
	players, err := s.qry.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(players))
	for i, player := range players {
		rows[i] = playerToRow(player)
	}
	return rows, nil
}

// Get returns the stored row for a UID, ok=false when absent.
func (s Store) Get(ctx context.Context, uid string) (Row, bool, error) {
	player, err := s.qry.GetPlayer(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return Row{}, false, nil
	}
	if err != nil {
		return Row{}, false, err
	}
	return playerToRow(player), true, nil
}

// CompletedUIDs returns the UIDs of stored rows that are Complete, for
// reconciling resume state against a results CSV.
func (s Store) CompletedUIDs(ctx context.Context) (map[string]bool, error) {
	rows, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	completed := map[string]bool{}
	for _, row := range rows {
		if Complete(row) {
			completed[row.PlayerUID] = true
		}
	}
	return completed, nil
}
