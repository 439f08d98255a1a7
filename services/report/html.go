package report

import (
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"os"

	"gridiron-backend/lib/timezone"
	"gridiron-backend/services/analysis"
	"gridiron-backend/services/biostats"
)

//go:embed report.html.tmpl
var reportTemplateText string

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateText))

const placeholderImage = "https://placehold.co/200x200/cccccc/ffffff?text=Image+N/A"

type featuredCard struct {
	PlayerName        string
	Position          string
	TeamName          string
	Emotion           string
	EmotionConfidence string
	Birthdate         string
	HeightWeight      string
	College           string
	DraftInfo         string
	Status            string
	PlayerURL         string
	ImageSrc          template.URL
}

type emotionSection struct {
	Emotion string
	Players []featuredCard
}

type reportData struct {
	GeneratedAt string
	Emotions    []emotionSection
	Teams       []TeamHappiness
}

// WriteHTML renders the featured-players report. Headshots are
// re-downloaded through the scraper and inlined as base64 so the file
// is self-contained; a failed download falls back to a placeholder.
func WriteHTML(ctx context.Context, path string, rows []analysis.JoinedRow, scraper analysis.ProfileScraper, imageDir string) error {
	featured := FeaturedPlayers(rows)

	data := reportData{
		GeneratedAt: timezone.Now().Format("2006-01-02 15:04:05"),
		Teams:       TeamHappinessCounts(rows),
	}
	for _, emotion := range EmotionOrder {
		section := emotionSection{Emotion: emotion}
		for _, row := range featured[emotion] {
			section.Players = append(section.Players, buildCard(ctx, row, scraper, imageDir))
		}
		data.Emotions = append(data.Emotions, section)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := reportTemplate.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildCard(ctx context.Context, row analysis.JoinedRow, scraper analysis.ProfileScraper, imageDir string) featuredCard {
	card := featuredCard{
		PlayerName:        row.Chart.PlayerName,
		Position:          row.Chart.Position,
		TeamName:          row.Chart.TeamName,
		Emotion:           row.Analysis.InferredEmotion,
		EmotionConfidence: row.Analysis.EmotionConfidence,
		Birthdate:         row.Analysis.PlayerBirthdate,
		HeightWeight:      row.Analysis.PlayerHeightWeight,
		College:           row.Analysis.PlayerCollege,
		Status:            row.Analysis.PlayerOverallStatus,
		PlayerURL:         row.Chart.PlayerURL,
		DraftInfo:         draftDisplay(row.Analysis.PlayerDraftInfo),
		ImageSrc:          placeholderImage,
	}

	if src, ok := fetchHeadshotBase64(ctx, scraper, row, imageDir); ok {
		card.ImageSrc = template.URL(src)
	}
	return card
}

func draftDisplay(draftInfo string) string {
	draft := biostats.ParseDraft(draftInfo)
	if draft.Year != "" {
		return fmt.Sprintf("%s %s (%s)", draft.Year, draft.Position, draft.Organization)
	}
	if draft.Position != "" {
		return draft.Position
	}
	return "Undrafted"
}

func fetchHeadshotBase64(ctx context.Context, scraper analysis.ProfileScraper, row analysis.JoinedRow, imageDir string) (string, bool) {
	url := row.Chart.PlayerURL
	if scraper == nil || !analysis.ValidValue(url) {
		return "", false
	}

	profile, err := scraper.FetchProfile(ctx, url)
	if err != nil || profile.HeadshotUrl == "" {
		slog.DebugContext(ctx, "no headshot for featured player",
			"player", row.Chart.PlayerName, "err", err)
		return "", false
	}
	imagePath, err := scraper.DownloadHeadshot(ctx, profile.HeadshotUrl, imageDir, row.Chart.PlayerUID)
	if err != nil {
		slog.DebugContext(ctx, "headshot download failed",
			"player", row.Chart.PlayerName, "err", err)
		return "", false
	}
	defer os.Remove(imagePath)

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", false
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), true
}
