package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/peterstace/lineseek"
)

const version = "lineseek <unversioned>"

// terminalIO bundles the standard streams so that tests can substitute
// them.
type terminalIO struct {
	stdin            io.Reader
	stdout           io.Writer
	stdinIsTerminal  bool
	stdoutIsTerminal bool
}

type options struct {
	position    string
	direction   string
	maxPosition string
	number      bool
	configPath  string
	logfile     string
	version     bool
}

func newRootCmd(tio terminalIO) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "lineseek [file]",
		Short: "Print a run of lines from a file, forward or backward from any line",
		Long: `lineseek prints the lines of a file starting at a given line and moving
forward or backward, optionally stopping at a second line. Without a file
argument the lines are read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts, tio)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.position, "position", "p", "", `line to start at: a line number or "end" (default start)`)
	flags.StringVarP(&opts.direction, "direction", "d", "", `"forward" or "backward" (default forward)`)
	flags.StringVarP(&opts.maxPosition, "max-position", "m", "", `line to stop at: a line number, "start" or "end"`)
	flags.BoolVarP(&opts.number, "number", "n", false, "prefix each line with its line number")
	flags.StringVar(&opts.configPath, "config", "", "TOML file with default option values")
	flags.StringVar(&opts.logfile, "debug-logfile", "", "debug logfile")
	flags.BoolVar(&opts.version, "version", false, "print the version and exit")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options, tio terminalIO) error {
	if opts.version {
		fmt.Fprintln(tio.stdout, version)
		return nil
	}

	if err := applyConfig(cmd.Flags(), opts); err != nil {
		return err
	}

	var log lineseek.Logger = lineseek.NullLogger{}
	if opts.logfile != "" {
		lg, err := lineseek.OpenFileLogger(opts.logfile)
		if err != nil {
			return fmt.Errorf("could not open debug logfile %q: %w", opts.logfile, err)
		}
		defer lg.Close()
		log = lg
	}

	opener := lineseek.Opener{
		Position:    lineseek.ParsePosition(opts.position),
		Direction:   lineseek.ParseDirection(opts.direction),
		MaxPosition: lineseek.ParseMaxPosition(opts.maxPosition),
		Logger:      log,
	}

	var lines []lineseek.NumberedLine
	var err error
	if len(args) == 0 {
		if tio.stdinIsTerminal {
			return errors.New(`missing filename (use "lineseek --help" for usage)`)
		}
		content := lineseek.NewBufferContent(nil)
		if err := content.CollectFrom(tio.stdin); err != nil {
			return fmt.Errorf("could not read standard input: %w", err)
		}
		size, sizeErr := content.Size()
		if sizeErr != nil {
			return fmt.Errorf("could not read standard input: %w", sizeErr)
		}
		log.Info("Collected standard input: bytes=%d", size)
		lines, err = lineseek.Extract(cmd.Context(), content, opener.Position, opener.Direction, opener.MaxPosition, log)
	} else {
		opener.Path = args[0]
		lines, err = opener.OpenLines(cmd.Context())
	}
	if err != nil {
		log.Warn("Could not extract lines: reason=%q", err)
		return err
	}

	return printLines(tio.stdout, lines, opts.number, tio.stdoutIsTerminal)
}

// applyConfig fills in every option that was not set on the command line
// from the config file, if one was given.
func applyConfig(flags *pflag.FlagSet, opts *options) error {
	if opts.configPath == "" {
		return nil
	}
	config, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if !flags.Changed("position") {
		opts.position = config.Position
	}
	if !flags.Changed("direction") {
		opts.direction = config.Direction
	}
	if !flags.Changed("max-position") {
		opts.maxPosition = config.MaxPosition
	}
	if !flags.Changed("number") {
		opts.number = config.Number
	}
	return nil
}
