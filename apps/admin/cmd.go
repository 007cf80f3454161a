package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/trezcool/logbook/core/logbook"
)

var (
	isTerminalFunc = term.IsTerminal // mockable
	readLineFunc   = readLine        // mockable

	errHelp    = errors.New("help provided")
	errAborted = errors.New("aborted")
	errNoTTY   = errors.New("not a terminal: pass -yes to confirm")
)

type commandLine struct {
	out         io.Writer
	openDB      func(ctx context.Context) (*sqlx.DB, error)
	openService func(ctx context.Context) (*logbook.Service, error)
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  summary - print the dashboard counters and classes")
	fmt.Fprintln(cli.out, "  export - print the whole logbook document as JSON")
	fmt.Fprintln(cli.out, "  reset [-yes] - replace the logbook with the sample data")
	fmt.Fprintln(cli.out, "  ideas -topic TOPIC [-skill SKILL] [-level LEVEL] [-import N] - generate activity ideas")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a goose command against the sql database")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	resetCmd := flag.NewFlagSet("reset", flag.ExitOnError)
	resetYes := resetCmd.Bool("yes", false, "Do not ask for confirmation.")

	ideasCmd := flag.NewFlagSet("ideas", flag.ExitOnError)
	ideasTopic := ideasCmd.String("topic", "", "The lesson topic, e.g. \"les courses\".")
	ideasSkill := ideasCmd.String("skill", logbook.DefaultSkill, "One of "+strings.Join(logbook.Skills, ", ")+".")
	ideasLevel := ideasCmd.String("level", logbook.DefaultLevel, "One of "+strings.Join(logbook.Levels, ", ")+".")
	ideasImport := ideasCmd.Int("import", 0, "Add the Nth idea (starting at 1) to the activity bank.")

	switch args[1] {
	case "summary":
		svc, err := cli.openService(ctx)
		if err != nil {
			return err
		}
		return cli.summary(svc)
	case "export":
		svc, err := cli.openService(ctx)
		if err != nil {
			return err
		}
		return cli.export(svc)
	case "reset":
		if err := resetCmd.Parse(args[2:]); err != nil {
			return err
		}
		if !*resetYes {
			if err := cli.confirm("Toutes les données du journal seront remplacées. Continuer ? [o/N] "); err != nil {
				return err
			}
		}
		svc, err := cli.openService(ctx)
		if err != nil {
			return err
		}
		return cli.reset(ctx, svc)
	case "ideas":
		if err := ideasCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *ideasTopic == "" || *ideasImport < 0 {
			ideasCmd.Usage()
			return errHelp
		}
		svc, err := cli.openService(ctx)
		if err != nil {
			return err
		}
		req := logbook.IdeaRequest{Topic: *ideasTopic, Skill: *ideasSkill, Level: *ideasLevel}
		return cli.ideas(ctx, svc, req, *ideasImport)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		db, err := cli.openDB(ctx)
		if err != nil {
			return err
		}
		return cli.migrate(ctx, db, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// confirm asks a yes/no question on the terminal.
func (cli *commandLine) confirm(question string) error {
	if !isTerminalFunc(int(os.Stdin.Fd())) {
		return errNoTTY
	}
	fmt.Fprint(cli.out, question)
	answer, err := readLineFunc()
	if err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "o", "oui", "y", "yes":
		return nil
	default:
		return errAborted
	}
}

func readLine() (string, error) {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}
