package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/storage/database"
	"github.com/trezcool/logbook/storage/database/inmem"
	"github.com/trezcool/logbook/storage/database/sqlx"
	"github.com/trezcool/logbook/storage/filedb"
	"github.com/trezcool/logbook/storage/redisdb"
)

// Engines
const (
	EngineMemory = "memory"
	EngineFile   = "file"
	EngineRedis  = "redis"
	EngineSQL    = "sql"
)

// Open returns the DocumentStore selected by conf.Storage.Engine.
// The SQL engine is migrated before use.
func Open(ctx context.Context, conf *core.Config, logger core.Logger) (core.DocumentStore, error) {
	switch conf.Storage.Engine {
	case EngineMemory:
		logger.Warn("documents are kept in memory and will be lost on exit")
		return inmemdb.Open(), nil
	case EngineFile:
		return filedb.Open(conf.Storage.Dir)
	case EngineRedis:
		return redisdb.Open(ctx, conf.Redis)
	case EngineSQL:
		db, err := database.Open(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err = database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return sqlxrepos.NewDocumentRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage engine %q", conf.Storage.Engine)
	}
}
