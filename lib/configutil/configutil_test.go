package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	DataDir string `json:"data_dir"`
	FaceAPI struct {
		BaseUrl string `json:"base_url"`
	} `json:"faceapi"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "gridiron.json5"),
		[]byte(`{
			// comments are allowed
			data_dir: "combined_depth_charts",
			faceapi: { base_url: "http://localhost:5005" },
		}`),
		0600,
	)
	require.NoError(t, err)

	err = os.WriteFile(
		filepath.Join(dir, "gridiron.local.json5"),
		[]byte(`{ faceapi: { base_url: "http://10.0.0.4:5005" } }`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "gridiron.json5"))
	require.NoError(t, err)
	require.Equal(t, "combined_depth_charts", cfg.DataDir)
	require.Equal(t, "http://10.0.0.4:5005", cfg.FaceAPI.BaseUrl)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testConfig](filepath.Join(dir, "gridiron.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
