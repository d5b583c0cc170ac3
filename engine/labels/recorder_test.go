package labels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderAppendsToBucketFile(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir)
	require.NoError(t, err)
	defer rec.Close()

	id := uuid.New()
	require.NoError(t, rec.Record(KeyW, id, "models/teapot.stl"))
	require.NoError(t, rec.Record(KeyW, id, "models/teapot.stl"))
	require.NoError(t, rec.Record(KeyD, id, "models/tower.stl"))

	w, err := os.ReadFile(filepath.Join(dir, "w"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(w)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], id.String())
	assert.Contains(t, lines[0], "models/teapot.stl")

	d, err := os.ReadFile(filepath.Join(dir, "d"))
	require.NoError(t, err)
	assert.Contains(t, string(d), "models/tower.stl")

	a, err := os.ReadFile(filepath.Join(dir, "a"))
	require.NoError(t, err)
	assert.Empty(t, a)
}

func TestRecorderCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "labels")
	rec, err := NewRecorder(dir)
	require.NoError(t, err)
	defer rec.Close()

	for _, name := range []string{"w", "a", "s", "d"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
}
