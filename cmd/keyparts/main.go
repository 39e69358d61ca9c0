package main

import (
	"errors"
	"io"
	"os"

	"github.com/wbrc/keyparts"
	"github.com/wbrc/keyparts/kcv"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1 // I/O and other failures
	exitInput    = 2 // bad keys, parts, flags or configuration
	exitInternal = 3 // a split failed its own consistency checks
)

// usageError marks command line misuse.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdin, stdout, stderr)

	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		a.log.Error().Err(err).Msg("keyparts failed")
	}

	return exitCode(err)
}

func exitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return exitOK
	case keyparts.IsInternal(err):
		return exitInternal
	case errors.As(err, &uerr),
		errors.Is(err, keyparts.ErrMalformedInput),
		errors.Is(err, keyparts.ErrLengthMismatch),
		errors.Is(err, keyparts.ErrEmptyInput),
		errors.Is(err, keyparts.ErrInvalidPartCount),
		errors.Is(err, keyparts.ErrUnsupportedMode),
		errors.Is(err, kcv.ErrUnsupportedAlgorithm),
		errors.Is(err, kcv.ErrInvalidKeyLength):
		return exitInput
	default:
		return exitError
	}
}
