package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/voxelworks/voxlight/internal/config"
	"github.com/voxelworks/voxlight/internal/world"
)

// Storage handles file-based persistence for config and chunk light
// snapshots.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "light"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// LoadConfig reads config.json into cfg. If the file does not exist, cfg is unchanged.
func (s *Storage) LoadConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.log.Info("loaded config from file", "path", path)
	return nil
}

// SaveConfig writes cfg to config.json atomically.
func (s *Storage) SaveConfig(cfg *config.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')
	return s.atomicWrite(filepath.Join(s.dir, "config.json"), data)
}

// SaveChunkLight writes one chunk's light snapshot atomically.
func (s *Storage) SaveChunkLight(l *world.ChunkLight) error {
	data, err := EncodeChunkLight(l)
	if err != nil {
		return fmt.Errorf("encode light snapshot %+v: %w", l.Coords, err)
	}
	path := s.lightPath(l.Coords)
	if err := s.atomicWrite(path, data); err != nil {
		return err
	}
	s.log.Debug("saved light snapshot",
		"chunk_x", l.Coords.X,
		"chunk_z", l.Coords.Z,
		"bytes", len(data),
		"digest", l.Digest(),
	)
	return nil
}

// LoadChunkLight reads a chunk's light snapshot, or nil if none was saved.
func (s *Storage) LoadChunkLight(coords world.ChunkPos) (*world.ChunkLight, error) {
	data, err := os.ReadFile(s.lightPath(coords))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read light snapshot %+v: %w", coords, err)
	}

	l, err := DecodeChunkLight(data)
	if err != nil {
		return nil, fmt.Errorf("decode light snapshot %+v: %w", coords, err)
	}
	if l.Coords != coords {
		return nil, fmt.Errorf("light snapshot coords %+v do not match file %+v", l.Coords, coords)
	}
	return l, nil
}

func (s *Storage) lightPath(coords world.ChunkPos) string {
	return filepath.Join(s.dir, "light", fmt.Sprintf("%d.%d.vxl", coords.X, coords.Z))
}

// atomicWrite writes data using a temp file + rename.
func (s *Storage) atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
