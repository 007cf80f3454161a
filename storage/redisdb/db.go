package redisdb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/logbook/core"
)

// DB stores each document as a plain redis string, without expiry.
type DB struct {
	client *redis.Client
}

var _ core.DocumentStore = (*DB)(nil)

// Open connects to redis and checks the connection.
func Open(ctx context.Context, conf core.RedisConfig) (*DB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        conf.Addr,
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return &DB{client: client}, nil
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := db.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, core.ErrDocumentNotFound
		}
		return nil, errors.Wrapf(closedErr(err), "getting document %q", key)
	}
	return data, nil
}

func (db *DB) Put(ctx context.Context, key string, data []byte) error {
	if err := db.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(closedErr(err), "setting document %q", key)
	}
	return nil
}

func (db *DB) Close() error {
	return db.client.Close()
}

// closedErr turns the use of a closed client into a shutdown error.
func closedErr(err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return core.NewShutdownError("redis client closed")
	}
	return err
}
