package storage

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore keeps each slot as a pretty-printed JSON document inside a
// single data folder, mirroring the on-device layout the app's backups
// expect (one folder holding the JSON documents plus offloaded media).
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.Dir, slot+".json")
}

// Load returns nil data without an error when the slot does not exist,
// so callers fall back to their defaults.
func (s *FileStore) Load(slot string) ([]byte, error) {
	data, err := os.ReadFile(s.path(slot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Save(slot string, data []byte) error {
	return os.WriteFile(s.path(slot), data, 0o644)
}

func (s *FileStore) Delete(slot string) error {
	err := os.Remove(s.path(slot))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveMedia offloads an inline "data:" payload to a file in the data
// folder and returns the generated filename. Anything that is not an
// inline payload (http URLs, already-offloaded filenames) is returned
// untouched.
func (s *FileStore) SaveMedia(payload, kind string) (string, error) {
	if !strings.HasPrefix(payload, "data:") {
		return payload, nil
	}

	raw := payload
	if idx := strings.Index(raw, ","); idx >= 0 {
		raw = raw[idx+1:]
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("decode media payload: %w", err)
	}

	ext := "jpg"
	if kind == "video" {
		ext = "mp4"
	}
	filename := fmt.Sprintf("%d_%d.%s", time.Now().UnixMilli(), rand.Intn(1000), ext)
	if err := os.WriteFile(filepath.Join(s.Dir, filename), decoded, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return filename, nil
}

// MediaFileName strips any directory part from a media reference so only
// the device-relative filename is persisted or exported. Inline payloads
// and remote URLs pass through unchanged.
func MediaFileName(path string) string {
	if path == "" || strings.HasPrefix(path, "data:") || strings.HasPrefix(path, "http") {
		return path
	}
	cleaned := strings.ReplaceAll(path, "\\", "/")
	if idx := strings.LastIndex(cleaned, "/"); idx >= 0 {
		return cleaned[idx+1:]
	}
	return path
}
