package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/tests"
)

func TestOpen(t *testing.T) {
	s := miniredis.RunT(t)

	tests := []struct {
		name    string
		engine  string
		wantErr bool
	}{
		{name: "memory", engine: EngineMemory},
		{name: "file", engine: EngineFile},
		{name: "redis", engine: EngineRedis},
		{name: "sql", engine: EngineSQL},
		{name: "unknown", engine: "lol", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			conf := testutil.NewConfig(t)
			conf.Storage.Engine = tt.engine
			conf.Storage.Dir = filepath.Join(t.TempDir(), "data")
			conf.Redis.Addr = s.Addr()

			ds, err := Open(ctx, conf, core.NopLogger{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { _ = ds.Close() }()

			_, err = ds.Get(ctx, tt.name)
			assert.Equal(t, core.ErrDocumentNotFound, errors.Cause(err))
			require.NoError(t, ds.Put(ctx, tt.name, []byte(`{}`)))
			data, err := ds.Get(ctx, tt.name)
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(data))
		})
	}
}
