package redisdb

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/logbook/core"
)

func TestDB(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)
	s.RequireAuth("test-password")

	db, err := Open(ctx, core.RedisConfig{Addr: s.Addr(), Password: "test-password", DB: 2})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Get(ctx, "fle-logbook-data")
	assert.Equal(t, core.ErrDocumentNotFound, err)

	require.NoError(t, db.Put(ctx, "fle-logbook-data", []byte(`{"classes":[]}`)))
	data, err := db.Get(ctx, "fle-logbook-data")
	require.NoError(t, err)
	assert.Equal(t, `{"classes":[]}`, string(data))

	s.Select(2)
	got, err := s.Get("fle-logbook-data")
	require.NoError(t, err)
	assert.Equal(t, `{"classes":[]}`, got)
	assert.Zero(t, s.TTL("fle-logbook-data"))
}

func TestOpen_unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err := Open(context.Background(), core.RedisConfig{Addr: addr})
	assert.Error(t, err)
}

func TestDB_backendError(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)
	db, err := Open(ctx, core.RedisConfig{Addr: s.Addr()})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s.SetError("READONLY")
	assert.Error(t, db.Put(ctx, "k", []byte("v")))
	_, err = db.Get(ctx, "k")
	assert.Error(t, err)
	assert.NotEqual(t, core.ErrDocumentNotFound, err)
}

func TestDB_closed(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)
	db, err := Open(ctx, core.RedisConfig{Addr: s.Addr()})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = db.Put(ctx, "k", []byte("v"))
	assert.True(t, core.IsShutdown(err), "got %v", err)
}
