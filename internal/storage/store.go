// Package storage keeps recordings on disk, one directory per recording
// holding an asciicast file and its metadata.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	castFile = "session.cast"
	metaFile = "metadata.json"
)

var ErrNotFound = errors.New("storage: recording not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RecordingMetadata struct {
	ID        string             `json:"id"`
	Texture   string             `json:"texture"`
	Glyphs    string             `json:"glyphs"`
	Timestamp time.Time          `json:"timestamp"`
	Step      float64            `json:"step"`
	FPS       int                `json:"fps"`
	Frames    int                `json:"frames"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Create makes a new recording directory and opens its cast file. The
// caller closes the file and then calls SaveMetadata.
func (s *Store) Create(name string) (string, *os.File, error) {
	if err := s.Init(); err != nil {
		return "", nil, err
	}

	base := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	id := base
	for n := 1; ; n++ {
		err := os.Mkdir(filepath.Join(s.baseDir, id), 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", nil, err
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}

	f, err := os.Create(s.CastPath(id))
	if err != nil {
		return "", nil, err
	}
	return id, f, nil
}

func (s *Store) CastPath(id string) string {
	return filepath.Join(s.baseDir, id, castFile)
}

func (s *Store) SaveMetadata(meta RecordingMetadata) error {
	f, err := os.Create(filepath.Join(s.baseDir, meta.ID, metaFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// List returns every readable recording, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]RecordingMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordingMetadata{}, nil
		}
		return nil, err
	}

	recs := make([]RecordingMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		recs = append(recs, *meta)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp.Before(recs[j].Timestamp)
	})
	return recs, nil
}

func (s *Store) Load(id string) (*RecordingMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta RecordingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", id, err)
	}
	return &meta, nil
}
