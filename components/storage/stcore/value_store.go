package stcore

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/open-control-systems/clock-guard/components/status"
)

// ValueStore persists named numeric values on top of a blob database.
//
// Values are encoded as decimal text, so the database content stays readable
// with standard bbolt tooling.
type ValueStore struct {
	db DB
}

// NewValueStore is an initialization of ValueStore.
func NewValueStore(db DB) *ValueStore {
	return &ValueStore{
		db: db,
	}
}

// GetValue returns the value stored under key.
//
// Remarks:
//   - status.StatusNoData is returned if the value was never set.
func (s *ValueStore) GetValue(key string) (float64, error) {
	blob, err := s.db.Read(key)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(string(blob.Data), 64)
	if err != nil {
		return 0, fmt.Errorf("value-store: invalid value: key=%s: %v: %w",
			key, err, status.StatusInvalidState)
	}

	return value, nil
}

// SetValue stores value under key, the previous value is overwritten.
func (s *ValueStore) SetValue(key string, value float64) error {
	return s.db.Write(key, Blob{
		Data: []byte(strconv.FormatFloat(value, 'g', -1, 64)),
	})
}

// HasValue returns true if the value is stored under key.
func (s *ValueStore) HasValue(key string) (bool, error) {
	_, err := s.db.Read(key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, status.StatusNoData) {
		return false, nil
	}

	return false, err
}

// ClearOne removes the value stored under key.
func (s *ValueStore) ClearOne(key string) error {
	return s.db.Remove(key)
}

// ClearAll removes all values from the store.
func (s *ValueStore) ClearAll() error {
	var keys []string

	if err := s.db.ForEach(func(key string, _ Blob) error {
		keys = append(keys, key)

		return nil
	}); err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.db.Remove(key); err != nil {
			return err
		}
	}

	return nil
}
