package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes zeroes with the given arguments and returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Level:           log.WarnLevel,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(logger))

	// the terminal error is always reported, whatever --log-level says
	diag := log.NewWithOptions(stderr, log.Options{
		Level:           log.ErrorLevel,
		ReportTimestamp: false,
	})

	app := buildApp(logger, stdout, stderr)

	err := app.Run(escapeNegativeNumbers(args))
	if err != nil {
		diag.Error(err.Error())
	}

	return exitCode(err)
}
