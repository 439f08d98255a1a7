package faceapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "face.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG fake"), 0644))
	return path
}

func TestAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze", r.URL.Path)

		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.True(t, strings.HasPrefix(req.Img, "data:image/png;base64,"))
		require.Equal(t, []string{"age", "race", "emotion"}, req.Actions)
		require.Equal(t, "opencv", req.DetectorBackend)
		require.False(t, req.EnforceDetection)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(analyzeResponse{Results: []Face{{
			Age:     24,
			Emotion: map[string]float64{"happy": 82.1, "neutral": 12.3},
			Race:    map[string]float64{"black": 91.5, "white": 4.2},
		}}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseUrl: server.URL})
	face, err := client.Analyze(context.Background(), writeTestImage(t))
	require.NoError(t, err)
	assert.Equal(t, 24, face.Age)
	assert.Equal(t, 82.1, face.Emotion["happy"])
	assert.Equal(t, 91.5, face.Race["black"])
}

func TestAnalyzeNoFace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(analyzeResponse{Results: []Face{}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseUrl: server.URL})
	_, err := client.Analyze(context.Background(), writeTestImage(t))
	require.ErrorIs(t, err, ErrNoFace)
}

func TestAnalyzeServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(analyzeResponse{Error: "exception while analyzing"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseUrl: server.URL})
	_, err := client.Analyze(context.Background(), writeTestImage(t))
	require.ErrorContains(t, err, "exception while analyzing")
}

func TestDominant(t *testing.T) {
	label, confidence, ok := Dominant(map[string]float64{
		"happy": 82.1, "neutral": 12.3, "sad": 5.6,
	})
	require.True(t, ok)
	assert.Equal(t, "Happy", label)
	assert.Equal(t, 82.1, confidence)

	_, _, ok = Dominant(nil)
	assert.False(t, ok)
}
