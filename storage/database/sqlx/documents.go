package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
)

const (
	getDocumentQuery = `SELECT data FROM documents WHERE doc_key = ?`
	putDocumentQuery = `INSERT INTO documents (doc_key, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT (doc_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
)

var nowFunc = time.Now // mockable

// documentRepository keeps each document in one row of the "documents" table.
type documentRepository struct {
	db *sqlx.DB
}

var _ core.DocumentStore = (*documentRepository)(nil)

func NewDocumentRepository(db *sqlx.DB) *documentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var data string
	if err := repo.db.GetContext(ctx, &data, repo.db.Rebind(getDocumentQuery), key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrDocumentNotFound
		}
		return nil, errors.Wrapf(connErr(err), "selecting document %q", key)
	}
	return []byte(data), nil
}

func (repo *documentRepository) Put(ctx context.Context, key string, data []byte) error {
	_, err := repo.db.ExecContext(ctx, repo.db.Rebind(putDocumentQuery), key, string(data), nowFunc().UTC())
	if err != nil {
		return errors.Wrapf(connErr(err), "upserting document %q", key)
	}
	return nil
}

func (repo *documentRepository) Close() error {
	return repo.db.Close()
}

// errDBClosed is the text of the unexported error database/sql returns once the pool is closed.
const errDBClosed = "sql: database is closed"

// connErr turns a lost connection or a closed pool into a shutdown error.
func connErr(err error) error {
	if errors.Is(err, sql.ErrConnDone) || strings.Contains(err.Error(), errDBClosed) {
		return core.NewShutdownError("database connection closed")
	}
	return err
}
