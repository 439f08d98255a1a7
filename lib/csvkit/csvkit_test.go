package csvkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testFields = []string{"PlayerName", "PlayerUID", "InferredRace"}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := OpenWriter(path, testFields)
	require.NoError(t, err)
	require.NoError(t, w.WriteRow(map[string]string{
		"PlayerName":   "Bryce Young",
		"PlayerUID":    "4685720",
		"InferredRace": "Black",
	}))
	require.NoError(t, w.Close())

	header, rows, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, testFields, header)
	require.Len(t, rows, 1)
	require.Equal(t, "4685720", rows[0]["PlayerUID"])
}

func TestAppendKeepsExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := OpenWriter(path, testFields)
	require.NoError(t, err)
	require.NoError(t, w.WriteRow(map[string]string{"PlayerUID": "1"}))
	require.NoError(t, w.Close())

	w, err = OpenWriter(path, testFields)
	require.NoError(t, err)
	require.NoError(t, w.WriteRow(map[string]string{"PlayerUID": "2"}))
	require.NoError(t, w.Close())

	_, rows, err := Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "1", rows[0]["PlayerUID"])
	require.Equal(t, "2", rows[1]["PlayerUID"])
}

func TestCorruptHeaderRestartsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("garbage,columns\n1,2\n"), 0644))

	w, err := OpenWriter(path, testFields)
	require.NoError(t, err)
	require.NoError(t, w.WriteRow(map[string]string{"PlayerUID": "3"}))
	require.NoError(t, w.Close())

	header, rows, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, testFields, header)
	require.Len(t, rows, 1)
	require.Equal(t, "3", rows[0]["PlayerUID"])
}

func TestReadShortRecordPads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("PlayerName,PlayerUID,InferredRace\nX,9\n"), 0644))

	_, rows, err := Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "", rows[0]["InferredRace"])
}
