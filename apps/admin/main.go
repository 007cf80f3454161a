package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/core/logbook"
	"github.com/trezcool/logbook/services/ideagen"
	logsvc "github.com/trezcool/logbook/services/logger"
	"github.com/trezcool/logbook/storage"
	"github.com/trezcool/logbook/storage/database"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	if err := start(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func start(args []string) error {
	conf := core.NewConfig()
	appLogger := logsvc.NewRollbarLogger(logger, conf)
	appLogger.Enable(!conf.Debug)

	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Printf("closing: %v", err)
			}
		}
	}()

	// start CLI
	cli := commandLine{
		out: os.Stdout,
		openDB: func(ctx context.Context) (*sqlx.DB, error) {
			db, err := database.Open(ctx, conf)
			if err != nil {
				return nil, err
			}
			closers = append(closers, db)
			return db, nil
		},
		openService: func(ctx context.Context) (*logbook.Service, error) {
			ds, err := storage.Open(ctx, conf, appLogger)
			if err != nil {
				return nil, err
			}
			closers = append(closers, ds)

			store := logbook.NewStore(ds, conf.Storage.Key, appLogger)
			if err = store.Load(ctx); err != nil {
				return nil, err
			}

			generator, err := newGenerator(ctx, conf.Gemini)
			if err != nil {
				return nil, err
			}

			validate := validator.New()
			core.InitValidators(validate, core.NewTranslator())
			return logbook.NewService(store, validate, generator, appLogger), nil
		},
	}
	return cli.run(args)
}

// newGenerator returns a nil generator when no API key is configured.
func newGenerator(ctx context.Context, conf core.GeminiConfig) (logbook.IdeaGenerator, error) {
	gemini, err := ideagen.NewGemini(ctx, conf)
	switch {
	case err == nil:
		return gemini, nil
	case errors.Is(err, logbook.ErrMissingAPIKey):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "setting up idea generator")
	}
}
