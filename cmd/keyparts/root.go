package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	log zerolog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	json       bool
	verbose    bool
	quiet      bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		v:      newViper(),
		log:    newLogger(stderr, false, false),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

const long = `keyparts splits HSM keys into XOR key parts and merges key parts back into
keys, for split-knowledge / dual-control key entry.

All parts are needed to rebuild a key; any smaller set of parts reveals
nothing about it. Keys and parts are hexadecimal strings and may contain
spaces. Pass '-' to read parts from stdin, one per line, or no parts at all
to be prompted for them without echo.`

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keyparts",
		Short: "Split and merge XOR key parts for an HSM",
		Long:  long,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = newLogger(a.stderr, a.verbose, a.quiet)

			if err := a.loadConfig(); err != nil {
				return err
			}

			return a.v.BindPFlags(cmd.Flags())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (or KEYPARTS_CONFIG env, default ~/.keyparts.yaml)")
	pf.BoolVar(&a.json, "json", false, "output results as JSON")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(a.newSplitCmd())
	root.AddCommand(a.newMergeCmd())
	root.AddCommand(a.newKCVCmd())

	return root
}

func newLogger(w io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}
