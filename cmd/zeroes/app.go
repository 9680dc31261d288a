package main

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/draganm/zeroes/internal/dataset"
)

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// buildApp creates the command line interface. Diagnostics go through
// logger, exit codes are left to the caller.
func buildApp(logger *log.Logger, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "zeroes",
		Usage:     "Generate an intermediate result consisting only of zeroes (ASCII '0')",
		ArgsUsage: fmt.Sprintf("NUMBER KIND\n\n   NUMBER  the number of zeroes to generate in the file\n   KIND    the kind of dataset to generate (%s)", strings.Join(dataset.KindNames(), ", ")),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   dataset.DefaultOutputPath,
				Usage:   "path of the file to write",
			},
			&cli.BoolFlag{
				Name:  "atomic",
				Usage: "stage the output in a temporary file and rename it into place instead of truncating it",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level (debug, info, warn, error, fatal)",
			},
		},
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			level, err := log.ParseLevel(c.String("log-level"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid --log-level: %v", err), exitUsage)
			}
			logger.SetLevel(level)
			return nil
		},
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return cli.Exit(err.Error(), exitUsage)
		},
		// run maps errors to exit codes, urfave/cli must not exit by itself
		ExitErrHandler: func(*cli.Context, error) {},
		Action:         generate,
	}
}

func generate(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit(fmt.Sprintf("expected arguments NUMBER KIND, got %d argument(s)", c.NArg()), exitUsage)
	}

	n, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("argument NUMBER: invalid int value: '%s'", c.Args().Get(0)), exitUsage)
	}

	kind, err := dataset.ParseKind(c.Args().Get(1))
	if err != nil {
		return cli.Exit(fmt.Sprintf("argument KIND: %v", err), exitUsage)
	}

	if n < 0 {
		return cli.Exit(fmt.Sprintf("NUMBER has to be a non-negative integer, not %d", n), exitFailure)
	}

	gen, err := dataset.New(&dataset.Config{
		OutputPath: c.String("output"),
		Atomic:     c.Bool("atomic"),
	})
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	res, err := gen.Generate(dataset.Request{Count: n, Kind: kind})
	if err != nil {
		return err
	}

	slog.Info("Dataset generated",
		"path", res.Path,
		"kind", kind,
		"count", n,
		"bytes", res.Size,
		"sha256", res.SHA256,
	)
	return nil
}

// escapeNegativeNumbers inserts "--" in front of the first positional
// argument that looks like a negative integer, so the flag parser hands it
// over as NUMBER instead of rejecting it as an unknown flag.
func escapeNegativeNumbers(args []string) []string {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if !negativeNumber.MatchString(arg) {
			continue
		}
		if takesValue(args[i-1]) {
			continue
		}
		escaped := make([]string, 0, len(args)+1)
		escaped = append(escaped, args[:i]...)
		escaped = append(escaped, "--")
		return append(escaped, args[i:]...)
	}
	return args
}

// takesValue reports whether arg is a flag whose value is the next argument
func takesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	switch strings.TrimLeft(arg, "-") {
	case "output", "o", "log-level":
		return strings.HasPrefix(arg, "-")
	}
	return false
}
