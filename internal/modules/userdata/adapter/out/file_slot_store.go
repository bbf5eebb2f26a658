package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	userdataout "chestdef/internal/modules/userdata/port/out"
	apperrors "chestdef/internal/platform/errors"
)

// FileSlotStore keeps each slot in {dir}/{key}.json.
type FileSlotStore struct {
	dir string
}

func NewFileSlotStore(dir string) userdataout.SlotStore {
	return &FileSlotStore{dir: dir}
}

func (s *FileSlotStore) Read(_ context.Context, key string) ([]byte, error) {
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return payload, nil
}

// Write replaces the slot atomically via a temp file rename.
func (s *FileSlotStore) Write(_ context.Context, key string, payload []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close slot %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("replace slot %s: %w", key, err)
	}
	return nil
}

func (s *FileSlotStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
