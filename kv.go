package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Persisted keys. Each key is one JSON file in the state directory.
const (
	keyTransactions = "transactions"
	keyCurrency     = "currentCurrency"
	keyLegacy       = "expenses" // pre-currency data, consumed once by migration
)

// kvStore persists JSON values under named keys, one file per key, in a
// single state directory. The directory is created lazily on first write.
type kvStore struct {
	dir string
}

func newKVStore(dir string) *kvStore { return &kvStore{dir: dir} }

func (s *kvStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// get reads the value stored under key into v. It returns (false, nil) when
// the key has never been written, and (false, nil) when the file exists but
// holds corrupt JSON, so a damaged state file degrades to the empty state
// instead of wedging the application. On a corrupt file v may be left
// partially decoded: callers must only use v when get reports true.
func (s *kvStore) get(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: reading %q: %v", ErrStorageUnavailable, key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("warning, state file %q is corrupt, ignoring it: %v", s.path(key), err)
		return false, nil
	}
	return true, nil
}

// put writes v as JSON under key, atomically: the value is written to a
// temp file first and renamed over the previous one.
func (s *kvStore) put(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: creating state directory %q: %v", ErrStorageUnavailable, s.dir, err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrStorageUnavailable, key, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %q: %v", ErrStorageUnavailable, key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrStorageUnavailable, key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

// delete removes the key. Deleting an absent key is not an error.
func (s *kvStore) delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: deleting %q: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}
