package stcore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/clock-guard/components/status"
)

func newTestBboltBucket(t *testing.T) DB {
	db, err := NewBboltDB(filepath.Join(t.TempDir(), "test.db"), nil)
	require.Nil(t, err)

	t.Cleanup(func() {
		require.Nil(t, db.Close())
	})

	return NewBboltDBBucket(db, "baseline")
}

func testDatabases(t *testing.T) map[string]DB {
	return map[string]DB{
		"memory": NewMemoryDB(),
		"bbolt":  newTestBboltBucket(t),
	}
}

func TestValueStoreGetMissing(t *testing.T) {
	for name, db := range testDatabases(t) {
		t.Run(name, func(t *testing.T) {
			store := NewValueStore(db)

			_, err := store.GetValue("defaultBootTimeInterval")
			require.ErrorIs(t, err, status.StatusNoData)

			ok, err := store.HasValue("defaultBootTimeInterval")
			require.Nil(t, err)
			require.False(t, ok)
		})
	}
}

func TestValueStoreSetGet(t *testing.T) {
	for name, db := range testDatabases(t) {
		t.Run(name, func(t *testing.T) {
			store := NewValueStore(db)

			values := []float64{0, 1_000_000, 1_734_567_890.25, -300.5}

			for _, value := range values {
				require.Nil(t, store.SetValue("actualBootTimeInterval", value))

				got, err := store.GetValue("actualBootTimeInterval")
				require.Nil(t, err)
				require.Equal(t, value, got)
			}

			ok, err := store.HasValue("actualBootTimeInterval")
			require.Nil(t, err)
			require.True(t, ok)
		})
	}
}

func TestValueStoreClearOne(t *testing.T) {
	for name, db := range testDatabases(t) {
		t.Run(name, func(t *testing.T) {
			store := NewValueStore(db)

			require.Nil(t, store.SetValue("a", 1))
			require.Nil(t, store.SetValue("b", 2))

			require.Nil(t, store.ClearOne("a"))
			require.Nil(t, store.ClearOne("missing"))

			_, err := store.GetValue("a")
			require.ErrorIs(t, err, status.StatusNoData)

			value, err := store.GetValue("b")
			require.Nil(t, err)
			require.Equal(t, float64(2), value)
		})
	}
}

func TestValueStoreClearAll(t *testing.T) {
	for name, db := range testDatabases(t) {
		t.Run(name, func(t *testing.T) {
			store := NewValueStore(db)

			require.Nil(t, store.ClearAll())

			require.Nil(t, store.SetValue("a", 1))
			require.Nil(t, store.SetValue("b", 2))

			require.Nil(t, store.ClearAll())

			for _, key := range []string{"a", "b"} {
				_, err := store.GetValue(key)
				require.ErrorIs(t, err, status.StatusNoData)
			}
		})
	}
}

func TestValueStoreInvalidValue(t *testing.T) {
	db := NewMemoryDB()
	require.Nil(t, db.Write("broken", Blob{Data: []byte("not-a-number")}))

	store := NewValueStore(db)

	_, err := store.GetValue("broken")
	require.ErrorIs(t, err, status.StatusInvalidState)
}

func TestBboltDBBucketPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := NewBboltDB(path, nil)
	require.Nil(t, err)

	require.Nil(t, NewValueStore(NewBboltDBBucket(db, "baseline")).SetValue("key", 42.5))
	require.Nil(t, db.Close())

	db, err = NewBboltDB(path, nil)
	require.Nil(t, err)
	defer func() {
		require.Nil(t, db.Close())
	}()

	value, err := NewValueStore(NewBboltDBBucket(db, "baseline")).GetValue("key")
	require.Nil(t, err)
	require.Equal(t, 42.5, value)
}
