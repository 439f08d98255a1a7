package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gridiron-backend/lib/csvkit"
	"gridiron-backend/lib/faceapi"
	"gridiron-backend/lib/scrapers/espn"
	"gridiron-backend/services/depthchart"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/analysis")

type ProfileScraper interface {
	FetchProfile(ctx context.Context, playerUrl string) (espn.Profile, error)
	DownloadHeadshot(ctx context.Context, imageUrl, dir, uid string) (string, error)
}

type FaceAnalyzer interface {
	Analyze(ctx context.Context, imagePath string) (faceapi.Face, error)
}

// Runner walks a depth chart, scraping each player's profile and
// running face inference on their headshot. Every outcome, success or
// failure, becomes a results row so a rerun knows what is left to do.
type Runner struct {
	Scraper  ProfileScraper
	Faces    FaceAnalyzer
	ImageDir string
	// optional sqlite mirror of the results CSV
	Store *Store
}

// Run appends one row per chart entry to the results CSV at path.
// Players whose previous row is already Complete are skipped unless
// fresh is set, which discards the previous file entirely. Rows are
// flushed as they are written, interrupting mid-run loses nothing.
func (r Runner) Run(ctx context.Context, chart []depthchart.Row, resultsPath string, fresh bool) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	completed := map[string]bool{}
	if fresh {
		if err := os.Remove(resultsPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	} else {
		completed = LoadCompletedUIDs(ctx, resultsPath)
	}
	slog.InfoContext(ctx, "starting analysis run",
		"players", len(chart), "already_complete", len(completed))

	writer, err := csvkit.OpenWriter(resultsPath, Fields)
	if err != nil {
		return err
	}
	defer writer.Close()

	for _, chartRow := range chart {
		if err := ctx.Err(); err != nil {
			return err
		}
		if chartRow.PlayerUID != "" && completed[chartRow.PlayerUID] {
			slog.DebugContext(ctx, "skipping completed player",
				"uid", chartRow.PlayerUID, "player", chartRow.PlayerName)
			continue
		}

		row := r.analyzePlayer(ctx, chartRow)

		if err := writer.WriteRow(row.ToMap()); err != nil {
			return fmt.Errorf("append result for %s: %w", chartRow.PlayerName, err)
		}
		if r.Store != nil {
			if err := r.Store.Upsert(ctx, row); err != nil {
				slog.WarnContext(ctx, "could not mirror result row to db",
					"uid", row.PlayerUID, "err", err)
			}
		}
		slog.InfoContext(ctx, "analyzed player",
			"player", chartRow.PlayerName,
			"race", row.InferredRace,
			"emotion", row.InferredEmotion)
	}
	return nil
}

func (r Runner) analyzePlayer(ctx context.Context, chartRow depthchart.Row) (row Row) {
	ctx, span := tracer.Start(ctx, "analyzePlayer")
	defer span.End()

	row = Row{
		PlayerName: chartRow.PlayerName,
		PlayerUID:  chartRow.PlayerUID,
		PlayerURL:  chartRow.PlayerURL,
	}

	// one bad player page must not take down a run that can last hours
	defer func() {
		if p := recover(); p != nil {
			slog.ErrorContext(ctx, "panic while analyzing player",
				"player", chartRow.PlayerName, "panic", p)
			status := fmt.Sprintf("CRITICAL ERROR: %v", p)
			fillFace(&row, status)
			fillBio(&row, status)
		}
	}()

	// "-" marks an empty depth slot, there is nothing to scrape
	if chartRow.PlayerName == "" || chartRow.PlayerName == "-" {
		fillFace(&row, StatusSkipped)
		fillBio(&row, StatusSkipped)
		return row
	}

	if chartRow.PlayerURL == "" {
		fillFace(&row, StatusNoURL)
		fillBio(&row, StatusNoURL)
		return row
	}

	profile, err := r.Scraper.FetchProfile(ctx, chartRow.PlayerURL)
	if err != nil {
		slog.WarnContext(ctx, "profile scrape failed",
			"player", chartRow.PlayerName, "err", err)
		fillFace(&row, StatusScrapeFailed)
		fillBio(&row, StatusBioScrapeFailed)
		return row
	}

	if profile.HasBio {
		row.PlayerHeightWeight = orNA(profile.Bio.HeightWeight)
		row.PlayerBirthdate = orNA(profile.Bio.Birthdate)
		row.PlayerCollege = orNA(profile.Bio.College)
		row.PlayerDraftInfo = orNA(profile.Bio.DraftInfo)
		row.PlayerOverallStatus = orNA(profile.Bio.Status)
	} else {
		fillBio(&row, StatusBioScrapeFailed)
	}

	if profile.HeadshotUrl == "" {
		fillFace(&row, StatusNoURL)
		return row
	}

	imagePath, err := r.Scraper.DownloadHeadshot(ctx, profile.HeadshotUrl, r.ImageDir, chartRow.PlayerUID)
	if err != nil {
		if errors.Is(err, espn.ErrEmptyDownload) {
			fillFace(&row, StatusEmptyDownload)
		} else {
			fillFace(&row, StatusScrapeFailed)
		}
		return row
	}
	defer os.Remove(imagePath)

	face, err := r.Faces.Analyze(ctx, imagePath)
	if err != nil {
		if errors.Is(err, faceapi.ErrNoFace) {
			fillFace(&row, StatusNoFace)
		} else {
			fillFace(&row, fmt.Sprintf("Error: %s", err))
		}
		return row
	}

	if race, confidence, ok := faceapi.Dominant(face.Race); ok {
		row.InferredRace = race
		row.RaceConfidence = fmt.Sprintf("%.2f%%", confidence)
	} else {
		row.InferredRace = StatusNoProbabilities
		row.RaceConfidence = StatusNA
	}
	if emotion, confidence, ok := faceapi.Dominant(face.Emotion); ok {
		row.InferredEmotion = emotion
		row.EmotionConfidence = fmt.Sprintf("%.2f%%", confidence)
	} else {
		row.InferredEmotion = StatusNoProbabilities
		row.EmotionConfidence = StatusNA
	}
	if face.Age > 0 {
		row.InferredAge = fmt.Sprintf("%d", face.Age)
	} else {
		row.InferredAge = StatusNA
	}
	return row
}

func orNA(s string) string {
	if s == "" {
		return StatusNA
	}
	return s
}

func fillFace(row *Row, status string) {
	row.InferredRace = status
	row.RaceConfidence = status
	row.InferredAge = status
	row.InferredEmotion = status
	row.EmotionConfidence = status
}

func fillBio(row *Row, status string) {
	row.PlayerHeightWeight = status
	row.PlayerBirthdate = status
	row.PlayerCollege = status
	row.PlayerDraftInfo = status
	row.PlayerOverallStatus = status
}
