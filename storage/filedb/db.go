package filedb

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// DB stores each document in <dir>/<key>.json.
type DB struct {
	dir string
}

var _ core.DocumentStore = (*DB)(nil)

// Open creates dir if needed.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dir)
	}
	return &DB{dir: dir}, nil
}

func (db *DB) path(key string) string {
	return filepath.Join(db.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(db.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrDocumentNotFound
		}
		return nil, errors.Wrapf(err, "reading document %q", key)
	}
	return data, nil
}

// Put writes to a temp file first so a crash never leaves a truncated document.
func (db *DB) Put(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(db.dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing document %q", key)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "syncing document %q", key)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing document %q", key)
	}
	if err = os.Rename(tmp.Name(), db.path(key)); err != nil {
		return errors.Wrapf(err, "replacing document %q", key)
	}
	return nil
}

func (db *DB) Close() error { return nil }
