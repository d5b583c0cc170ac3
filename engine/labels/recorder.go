// Package labels keeps the bookkeeping of triage decisions: each W/A/S/D key
// gets its own append-only file recording which meshes were sorted into it.
package labels

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Key is one of the four triage buckets.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyA:
		return "a"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	}
	return "unknown"
}

// Recorder appends one line per labeled mesh to the bucket's file. Files are
// opened once and held for the session, matching how a long labeling run is
// used.
type Recorder struct {
	files map[Key]*os.File
}

// NewRecorder opens (creating if needed) the four bucket files inside dir.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating labels dir %s: %w", dir, err)
	}

	files := make(map[Key]*os.File, 4)
	for _, key := range []Key{KeyW, KeyA, KeyS, KeyD} {
		path := filepath.Join(dir, key.String())
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			for _, open := range files {
				open.Close()
			}
			return nil, fmt.Errorf("opening label file %s: %w", path, err)
		}
		files[key] = f
	}

	return &Recorder{files: files}, nil
}

// Record appends the mesh's id and path to the bucket file with a timestamp.
func (r *Recorder) Record(key Key, id uuid.UUID, path string) error {
	f, ok := r.files[key]
	if !ok {
		return fmt.Errorf("no label file for key %s", key)
	}

	line := fmt.Sprintf("%s %s %s\n", time.Now().Format(time.RFC3339), id, path)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("recording label %s: %w", key, err)
	}
	return nil
}

// Close closes every bucket file, returning the first error seen.
func (r *Recorder) Close() error {
	var firstErr error
	for _, f := range r.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
