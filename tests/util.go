package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/core/logbook"
	"github.com/trezcool/logbook/storage/database"
)

const DocumentKey = "fle-logbook-data"

// NewConfig returns a test configuration backed by a sqlite file in a temp dir.
func NewConfig(t *testing.T) *core.Config {
	return &core.Config{
		AppName:  "Journal FLE",
		Env:      "TEST",
		TestMode: true,
		Storage:  core.StorageConfig{Engine: "memory", Key: DocumentKey, Dir: t.TempDir()},
		Database: core.DatabaseConfig{
			Engine: database.EngineSQLite,
			Name:   filepath.Join(t.TempDir(), "logbook.db"),
		},
	}
}

// PrepareDB opens a migrated sqlite database that is closed with the test.
func PrepareDB(t *testing.T) *sqlx.DB {
	ctx := context.Background()
	db, err := database.Open(ctx, NewConfig(t))
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(ctx, db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	return db
}

func NewValidator() *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())
	return validate
}

// NewService returns a logbook.Service over ds, loaded with whatever ds holds.
func NewService(t *testing.T, ds core.DocumentStore, gen logbook.IdeaGenerator) *logbook.Service {
	store := logbook.NewStore(ds, DocumentKey, core.NopLogger{})
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return logbook.NewService(store, NewValidator(), gen, core.NopLogger{})
}

func CreateClass(t *testing.T, svc *logbook.Service, name, level string, students ...string) logbook.Class {
	ctx := context.Background()
	cls, err := svc.CreateClass(ctx, logbook.ClassForm{Name: name, Level: level, Schedule: "Lundi 10h"})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	for _, name := range students {
		st, err := svc.CreateStudent(ctx, cls.ID, logbook.StudentForm{Name: name})
		if err != nil {
			t.Fatalf("CreateClass() failed: %v", err)
		}
		cls.Students = append(cls.Students, st)
	}
	return cls
}

// StubGenerator returns Ideas, or Err when set.
type StubGenerator struct {
	Ideas []logbook.Idea
	Err   error
	Calls int
}

func (gen *StubGenerator) GenerateIdeas(_ context.Context, _ logbook.IdeaRequest) ([]logbook.Idea, error) {
	gen.Calls++
	if gen.Err != nil {
		return nil, gen.Err
	}
	return gen.Ideas, nil
}
