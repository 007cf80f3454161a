package core

import (
	"context"

	"github.com/pkg/errors"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore persists whole documents under a key.
// Get returns ErrDocumentNotFound when nothing was ever written under key.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Close() error
}

// Ordering is one sort key of a list query, e.g. "-date".
type Ordering struct {
	Field     string
	Ascending bool
}
