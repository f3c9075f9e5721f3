package stcore

import (
	"sync"

	"github.com/open-control-systems/clock-guard/components/status"
)

// MemoryDB keeps blobs in memory, nothing survives the process restart.
type MemoryDB struct {
	mu   sync.Mutex
	data map[string]Blob
}

// NewMemoryDB is an initialization of MemoryDB.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		data: make(map[string]Blob),
	}
}

// Read returns a copy of the stored blob.
func (d *MemoryDB) Read(key string) (Blob, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	blob, ok := d.data[key]
	if !ok {
		return Blob{}, status.StatusNoData
	}

	return copyBlob(blob), nil
}

// Write stores a copy of the blob.
func (d *MemoryDB) Write(key string, blob Blob) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data[key] = copyBlob(blob)

	return nil
}

// Remove removes the blob, if any.
func (d *MemoryDB) Remove(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.data, key)

	return nil
}

// ForEach iterates over a snapshot of the stored blobs.
func (d *MemoryDB) ForEach(fn func(key string, b Blob) error) error {
	d.mu.Lock()
	snapshot := make(map[string]Blob, len(d.data))
	for k, v := range d.data {
		snapshot[k] = copyBlob(v)
	}
	d.mu.Unlock()

	for k, v := range snapshot {
		if err := fn(k, v); err != nil {
			return err
		}
	}

	return nil
}

// Close is non-operational.
func (*MemoryDB) Close() error {
	return nil
}

func copyBlob(blob Blob) Blob {
	b := Blob{}

	b.Data = make([]byte, len(blob.Data))
	copy(b.Data, blob.Data)

	return b
}
