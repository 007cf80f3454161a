package main

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/logbook/storage/database"
)

var gooseRunFunc = database.RunMigrations // mockable

func (cli *commandLine) migrate(ctx context.Context, db *sqlx.DB, args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(ctx, db, args[0], arguments...)
}
