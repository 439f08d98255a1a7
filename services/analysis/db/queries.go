package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type Player struct {
	PlayerUid           string
	PlayerName          string
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
	PlayerUrl           string
	UpdatedAt           int64
}

const upsertPlayer = `
INSERT INTO players (
    player_uid, player_name,
    inferred_race, race_confidence, inferred_age,
    inferred_emotion, emotion_confidence,
    player_height_weight, player_birthdate, player_college,
    player_draft_info, player_overall_status,
    player_url, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (player_uid) DO UPDATE SET
    player_name = excluded.player_name,
    inferred_race = excluded.inferred_race,
    race_confidence = excluded.race_confidence,
    inferred_age = excluded.inferred_age,
    inferred_emotion = excluded.inferred_emotion,
    emotion_confidence = excluded.emotion_confidence,
    player_height_weight = excluded.player_height_weight,
    player_birthdate = excluded.player_birthdate,
    player_college = excluded.player_college,
    player_draft_info = excluded.player_draft_info,
    player_overall_status = excluded.player_overall_status,
    player_url = excluded.player_url,
    updated_at = excluded.updated_at
`

func (q *Queries) UpsertPlayer(ctx context.Context, arg Player) error {
	_, err := q.db.ExecContext(ctx, upsertPlayer,
		arg.PlayerUid,
		arg.PlayerName,
		arg.InferredRace,
		arg.RaceConfidence,
		arg.InferredAge,
		arg.InferredEmotion,
		arg.EmotionConfidence,
		arg.PlayerHeightWeight,
		arg.PlayerBirthdate,
		arg.PlayerCollege,
		arg.PlayerDraftInfo,
		arg.PlayerOverallStatus,
		arg.PlayerUrl,
		arg.UpdatedAt,
	)
	return err
}

const getPlayer = `
SELECT player_uid, player_name,
    inferred_race, race_confidence, inferred_age,
    inferred_emotion, emotion_confidence,
    player_height_weight, player_birthdate, player_college,
    player_draft_info, player_overall_status,
    player_url, updated_at
FROM players WHERE player_uid = ?
`

func (q *Queries) GetPlayer(ctx context.Context, playerUid string) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayer, playerUid)
	var p Player
	err := row.Scan(
		&p.PlayerUid,
		&p.PlayerName,
		&p.InferredRace,
		&p.RaceConfidence,
		&p.InferredAge,
		&p.InferredEmotion,
		&p.EmotionConfidence,
		&p.PlayerHeightWeight,
		&p.PlayerBirthdate,
		&p.PlayerCollege,
		&p.PlayerDraftInfo,
		&p.PlayerOverallStatus,
		&p.PlayerUrl,
		&p.UpdatedAt,
	)
	return p, err
}

const listPlayers = `
SELECT player_uid, player_name,
    inferred_race, race_confidence, inferred_age,
    inferred_emotion, emotion_confidence,
    player_height_weight, player_birthdate, player_college,
    player_draft_info, player_overall_status,
    player_url, updated_at
FROM players ORDER BY updated_at ASC
`

func (q *Queries) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		err := rows.Scan(
			&p.PlayerUid,
			&p.PlayerName,
			&p.InferredRace,
			&p.RaceConfidence,
			&p.InferredAge,
			&p.InferredEmotion,
			&p.EmotionConfidence,
			&p.PlayerHeightWeight,
			&p.PlayerBirthdate,
			&p.PlayerCollege,
			&p.PlayerDraftInfo,
			&p.PlayerOverallStatus,
			&p.PlayerUrl,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
