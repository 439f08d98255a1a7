package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCharts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.html")
	require.NoError(t, RenderCharts(path, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Distribution of Inferred Player Emotions")
	assert.Contains(t, html, "Teams: Happy vs Other Emotions")
	assert.Contains(t, html, "Overall Race Composition")
	assert.Contains(t, html, "Emotion Distribution by Race Group")
}

func TestWriteHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")

	// nil scraper, every card falls back to the placeholder image
	require.NoError(t, WriteHTML(context.Background(), path, sampleRows(), nil, dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "NFL Player Emotions Report")
	assert.Contains(t, html, "Featured Players Exhibiting")
	assert.Contains(t, html, "placehold.co")
	assert.Contains(t, html, "Carolina Panthers")
}

func TestWriteTables(t *testing.T) {
	var buf bytes.Buffer
	WriteTeamTables(&buf, sampleRows())
	WriteRaceCompositionTables(&buf, sampleRows())
	WriteEmotionByRaceTable(&buf, sampleRows())

	out := buf.String()
	assert.Contains(t, out, "Carolina Panthers")
	assert.Contains(t, out, "Overall Race Composition")
	assert.Contains(t, out, "Emotion Distribution by Race Group")
	// percentages are rendered with two decimals
	assert.True(t, strings.Contains(out, "50.00%") || strings.Contains(out, "100.00%"))
}
