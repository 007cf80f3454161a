package logbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
)

var errEmptyDocument = errors.New("empty document")

// Store holds the in-memory copy of the document and mirrors every change to a
// core.DocumentStore. It is the single writer of the persisted document.
type Store struct {
	ds     core.DocumentStore
	key    string
	logger core.Logger

	mu   sync.RWMutex
	data AppData

	subMu  sync.Mutex
	subs   map[int]func(AppData)
	nextID int
}

func NewStore(ds core.DocumentStore, key string, logger core.Logger) *Store {
	return &Store{
		ds:     ds,
		key:    key,
		logger: logger,
		data:   DefaultData(),
		subs:   make(map[int]func(AppData)),
	}
}

// Load reads the persisted document once. An absent or unparsable document is
// replaced by DefaultData; only a failing backend is reported.
func (s *Store) Load(ctx context.Context) error {
	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = doc
	s.mu.Unlock()
	return nil
}

func (s *Store) read(ctx context.Context) (AppData, error) {
	raw, err := s.ds.Get(ctx, s.key)
	if err != nil {
		if errors.Cause(err) == core.ErrDocumentNotFound {
			s.logger.Info(fmt.Sprintf("no document under %q, using defaults", s.key))
			return DefaultData(), nil
		}
		return AppData{}, errors.Wrap(err, "reading document")
	}
	doc, err := Decode(raw)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("unparsable document under %q, using defaults", s.key), err)
		return DefaultData(), nil
	}
	return doc, nil
}

// Decode parses a persisted document.
func Decode(raw []byte) (AppData, error) {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return AppData{}, errEmptyDocument
	}
	var doc AppData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AppData{}, err
	}
	return doc.Normalize(), nil
}

// Encode serializes a whole document.
func Encode(doc AppData) ([]byte, error) {
	return json.Marshal(doc.Normalize())
}

// Get returns a copy of the current document.
func (s *Store) Get() AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Update applies fn to the current document and persists the result.
// The in-memory copy only changes once the write succeeded.
func (s *Store) Update(ctx context.Context, fn func(AppData) (AppData, error)) (AppData, error) {
	s.mu.Lock()
	next, err := fn(s.data.Clone())
	if err != nil {
		s.mu.Unlock()
		return AppData{}, err
	}
	if err = s.write(ctx, next); err != nil {
		s.mu.Unlock()
		return AppData{}, err
	}
	s.data = next.Normalize()
	snapshot := s.data.Clone()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot, nil
}

// Replace swaps the whole document.
func (s *Store) Replace(ctx context.Context, doc AppData) error {
	_, err := s.Update(ctx, func(AppData) (AppData, error) { return doc.Clone(), nil })
	return err
}

func (s *Store) write(ctx context.Context, doc AppData) error {
	raw, err := Encode(doc)
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}
	if err = s.ds.Put(ctx, s.key, raw); err != nil {
		return errors.Wrap(err, "writing document")
	}
	return nil
}

// Subscribe registers fn to be called with every newly written document.
func (s *Store) Subscribe(fn func(AppData)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// LogWrites debug-logs a short summary of every saved document.
func (s *Store) LogWrites() (unsubscribe func()) {
	return s.Subscribe(func(d AppData) {
		s.logger.Debug(fmt.Sprintf("document saved: %d classes, %d lessons, %d activities",
			len(d.Classes), len(d.Lessons), len(d.Activities)))
	})
}

func (s *Store) notify(doc AppData) {
	s.subMu.Lock()
	subs := make([]func(AppData), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(doc.Clone())
	}
}
