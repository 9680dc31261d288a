package main

import (
	"errors"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/draganm/zeroes/internal/dataset"
)

// Exit codes returned by zeroes. I/O failures exit with the errno of the
// underlying system call instead, when there is one.
const (
	// exitSuccess indicates the dataset was written.
	exitSuccess = 0

	// exitFailure covers a negative NUMBER and I/O failures without an errno.
	exitFailure = 1

	// exitUsage indicates malformed arguments.
	exitUsage = 2

	// exitSoftware indicates an internal error (EX_SOFTWARE from sysexits.h).
	exitSoftware = 70
)

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	if errors.Is(err, dataset.ErrUnsupportedKind) {
		return exitSoftware
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	if dataset.IsWriteError(err) {
		var errno syscall.Errno
		if errors.As(err, &errno) && errno != 0 {
			return int(errno)
		}
	}

	return exitFailure
}
