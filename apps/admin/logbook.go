package main

import (
	"context"
	"fmt"

	"github.com/trezcool/logbook/core/logbook"
)

func (cli *commandLine) summary(svc *logbook.Service) error {
	sum := svc.Summary()
	fmt.Fprintf(cli.out, "Classes: %d\n", sum.Classes)
	fmt.Fprintf(cli.out, "Élèves: %d\n", sum.Students)
	fmt.Fprintf(cli.out, "Leçons: %d\n", sum.Lessons)
	fmt.Fprintf(cli.out, "Activités: %d\n", sum.Activities)
	for _, link := range sum.QuickLinks {
		fmt.Fprintf(cli.out, "  - %s (%s) %s : %d élève(s)\n", link.Name, link.Level, link.Schedule, link.Students)
	}
	return nil
}

func (cli *commandLine) export(svc *logbook.Service) error {
	raw, err := logbook.Encode(svc.Data())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cli.out, string(raw))
	return err
}

func (cli *commandLine) reset(ctx context.Context, svc *logbook.Service) error {
	if err := svc.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Journal réinitialisé.")
	return nil
}

// ideas prints the generated ideas and imports the nth one (1-based) when nth > 0.
func (cli *commandLine) ideas(ctx context.Context, svc *logbook.Service, req logbook.IdeaRequest, nth int) error {
	ideas, err := svc.GenerateIdeas(ctx, req)
	if err != nil {
		return err
	}
	for i, idea := range ideas {
		fmt.Fprintf(cli.out, "%d. %s [%s, %d min]\n   %s\n", i+1, idea.Title, idea.Type, idea.Duration, idea.Description)
	}
	if nth == 0 {
		return nil
	}
	act, err := svc.ImportIdea(ctx, nth-1)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Activité %q ajoutée à la banque.\n", act.Title)
	return nil
}
