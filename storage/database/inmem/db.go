package inmemdb

import (
	"context"
	"sync"

	"github.com/trezcool/logbook/core"
)

// DB keeps documents in a map. Used by tests and the "memory" storage engine.
type DB struct {
	mutex sync.RWMutex
	table map[string][]byte
}

var _ core.DocumentStore = (*DB)(nil)

func Open() *DB {
	return &DB{table: make(map[string][]byte)}
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	data, ok := db.table[key]
	if !ok {
		return nil, core.ErrDocumentNotFound
	}
	return append([]byte(nil), data...), nil
}

func (db *DB) Put(_ context.Context, key string, data []byte) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.table[key] = append([]byte(nil), data...)
	return nil
}

func (db *DB) Close() error { return nil }
