package inmemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/logbook/core"
)

func TestDB(t *testing.T) {
	ctx := context.Background()
	db := Open()

	_, err := db.Get(ctx, "k")
	assert.Equal(t, core.ErrDocumentNotFound, err)

	buf := []byte("v1")
	require.NoError(t, db.Put(ctx, "k", buf))
	buf[0] = 'x' // the stored copy must not change

	data, err := db.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
	assert.NoError(t, db.Close())
}
