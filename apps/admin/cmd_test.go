package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/core/logbook"
	"github.com/trezcool/logbook/storage/database/inmem"
	"github.com/trezcool/logbook/tests"
)

func setup(t *testing.T, gen logbook.IdeaGenerator) (*commandLine, *logbook.Service, *bytes.Buffer) {
	svc := testutil.NewService(t, inmemdb.Open(), gen)
	out := new(bytes.Buffer)

	// start CLI
	cli := &commandLine{
		out: out,
		openDB: func(context.Context) (*sqlx.DB, error) {
			return testutil.PrepareDB(t), nil
		},
		openService: func(context.Context) (*logbook.Service, error) {
			return svc, nil
		},
	}
	return cli, svc, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func checkErr(t *testing.T, tt cliTest, err error) {
	if err == nil {
		if tt.wantErr != nil || tt.wantErrStr != "" {
			t.Errorf("cli.run() error = nil, wantErr %v%s", tt.wantErr, tt.wantErrStr)
		}
		return
	}
	if tt.wantErr != nil {
		assert.ErrorIs(t, err, tt.wantErr)
	} else if tt.wantErrStr != "" {
		if err.Error() != tt.wantErrStr {
			t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
		}
	} else {
		t.Errorf("cli.run() unexpected error = %v", err)
	}
}

func Test_commandLine_help(t *testing.T) {
	cli, _, out := setup(t, nil)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "migrate without subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "ideas without topic", args: []string{"ideas"}, wantErr: errHelp},
		{name: "ideas with negative import", args: []string{"ideas", "-topic", "le marché", "-import", "-1"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}
	assert.Contains(t, out.String(), "Usage:")
}

func Test_commandLine_migrate(t *testing.T) {
	cli, _, _ := setup(t, nil)

	gooseRunFunc = func(_ context.Context, _ *sqlx.DB, command string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "1"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "0"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}
}

func Test_commandLine_reset(t *testing.T) {
	type extra struct {
		tty    bool
		answer string
	}
	tests := []cliTest{
		{name: "not a terminal", args: []string{"reset"}, wantErr: errNoTTY},
		{name: "declined", args: []string{"reset"}, extra: extra{tty: true, answer: "n\n"}, wantErr: errAborted},
		{name: "empty answer", args: []string{"reset"}, extra: extra{tty: true, answer: "\n"}, wantErr: errAborted},
		{name: "confirmed", args: []string{"reset"}, extra: extra{tty: true, answer: "oui\n"}},
		{name: "forced", args: []string{"reset", "-yes"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		isTerminalFunc = func(int) bool {
			ex, ok := tt.extra.(extra)
			return ok && ex.tty
		}
		readLineFunc = func() (string, error) {
			ex, _ := tt.extra.(extra)
			return ex.answer, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			cli, svc, _ := setup(t, nil)
			testutil.CreateClass(t, svc, "A2 Matin", "A2", "Ana")

			err := cli.run(args)
			checkErr(t, tt, err)
			if err == nil {
				assert.Equal(t, logbook.DefaultData(), svc.Data())
			} else {
				assert.Len(t, svc.Classes(), 1, "data must be kept")
			}
		})
	}
}

func Test_commandLine_summaryAndExport(t *testing.T) {
	cli, svc, out := setup(t, nil)
	testutil.CreateClass(t, svc, "A2 Matin", "A2", "Ana", "Bruno")

	require.NoError(t, cli.run([]string{"admin", "summary"}))
	assert.Contains(t, out.String(), "Classes: 1\n")
	assert.Contains(t, out.String(), "Élèves: 2\n")
	assert.Contains(t, out.String(), "A2 Matin (A2) Lundi 10h : 2 élève(s)")

	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "export"}))
	var doc logbook.AppData
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, svc.Data(), doc)
}

func Test_commandLine_ideas(t *testing.T) {
	gen := &testutil.StubGenerator{Ideas: []logbook.Idea{
		{Title: "Jeu de rôle au marché", Description: "Acheter des fruits.", Duration: 20, Type: "Jeu de rôle"},
		{Title: "Le prix juste", Description: "Deviner les prix.", Duration: 10, Type: "Jeu"},
	}}

	tests := []cliTest{
		{name: "missing api key", args: []string{"ideas", "-topic", "le marché"}, wantErr: logbook.ErrMissingAPIKey, extra: false},
		{name: "import out of range", args: []string{"ideas", "-topic", "le marché", "-import", "3"}, wantErr: logbook.ErrNotFound},
		{name: "list", args: []string{"ideas", "-topic", "le marché"}},
		{name: "import", args: []string{"ideas", "-topic", "le marché", "-skill", "Vocabulaire", "-import", "2"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			var ideaGen logbook.IdeaGenerator = gen
			if withGen, ok := tt.extra.(bool); ok && !withGen {
				ideaGen = nil
			}
			cli, svc, out := setup(t, ideaGen)

			err := cli.run(args)
			checkErr(t, tt, err)
			if err != nil {
				return
			}
			assert.Contains(t, out.String(), "1. Jeu de rôle au marché [Jeu de rôle, 20 min]")
			assert.Contains(t, out.String(), "2. Le prix juste [Jeu, 10 min]")
			if tt.name == "import" {
				assert.Equal(t, "Le prix juste", svc.Activities()[0].Title)
				assert.Contains(t, out.String(), `Activité "Le prix juste" ajoutée à la banque.`)
			}
		})
	}
}

func Test_newGenerator(t *testing.T) {
	gen, err := newGenerator(context.Background(), core.GeminiConfig{APIKey: " "})
	require.NoError(t, err, "a missing key disables idea generation")
	assert.Nil(t, gen)

	gen, err = newGenerator(context.Background(), core.GeminiConfig{APIKey: "test-key", Model: "gemini-2.5-flash"})
	require.NoError(t, err)
	assert.NotNil(t, gen)
}
