package database

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

var gooseLogFunc = func(msg string) { fmt.Print(msg) } // mockable

// gooseLogger prints goose progress without exiting the process on errors:
// goose returns them too.
type gooseLogger struct{}

var _ goose.Logger = gooseLogger{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	gooseLogFunc(fmt.Sprintf(format, v...))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	gooseLogFunc(fmt.Sprintf(format, v...))
}
