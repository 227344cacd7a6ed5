package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileSlotStorage implements SlotStorage with one JSON file per slot.
type fileSlotStorage struct {
	dir string
}

// NewFileSlotStorage creates a slot store rooted at dir, creating the
// directory if needed.
func NewFileSlotStorage(dir string) (SlotStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &fileSlotStorage{dir: dir}, nil
}

func (s *fileSlotStorage) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// Save writes the slot atomically: serialize to a temp file in the same
// directory, then rename over the previous contents. A failed write never
// clobbers the previously persisted value.
func (s *fileSlotStorage) Save(slot string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", slot, err)
	}

	tmp, err := os.CreateTemp(s.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for slot %s: %w", slot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close slot %s: %w", slot, err)
	}
	if err := os.Rename(tmpName, s.path(slot)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot %s: %w", slot, err)
	}
	return nil
}

func (s *fileSlotStorage) Load(slot string, v any) error {
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("read slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode slot %s: %w", slot, err)
	}
	return nil
}

func (s *fileSlotStorage) Exists(slot string) bool {
	_, err := os.Stat(s.path(slot))
	return err == nil
}
