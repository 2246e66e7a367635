// Package cli implements the jmapctl command: decoding, validating,
// converting and exporting JMAP batches and records from the shell.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/i18n"
	"github.com/reoring/gojmap/internal/config"
	"github.com/reoring/gojmap/internal/logging"

	_ "github.com/reoring/gojmap/source"
)

// Streams are the standard streams a command runs against.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ExitError carries the process exit status for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }
func (e *ExitError) ExitCode() int { return e.Code }

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Err: fmt.Errorf(format, args...)}
}

// env is what every subcommand receives.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	stdio  Streams
	parse  gojmap.ParseOpt
	output string
	input  string
}

type command struct {
	name    string
	summary string
	run     func(e *env, args []string) error
}

var commands = []command{
	{"batch", "decode a request or response batch and re-encode it", runBatch},
	{"record", "decode and validate one record or patch", runRecord},
	{"export", "write contacts as vCard or events as iCalendar", runExport},
	{"schema", "print the JSON Schema of a record kind", runSchema},
}

// Run executes jmapctl with args (without the program name).
func Run(args []string, stdio Streams) error {
	var (
		configPath string
		logLevel   string
		input      string
		output     string
	)
	fs := pflag.NewFlagSet("jmapctl", pflag.ContinueOnError)
	fs.SetOutput(stdio.Err)
	fs.SetInterspersed(false)
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	fs.StringVar(&logLevel, "log-level", "", "log level (overrides config)")
	fs.StringVarP(&input, "input", "i", "", "input format: json, jsonc or yaml")
	fs.StringVarP(&output, "output", "o", "", "output format: json, yaml or cbor")
	fs.BoolP("help", "h", false, "show help")
	fs.Usage = func() { printUsage(stdio.Err, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Err: err}
	}
	if help, _ := fs.GetBool("help"); help || fs.NArg() == 0 {
		printUsage(stdio.Out, fs)
		if help {
			return nil
		}
		return usageError("missing command")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if input != "" {
		cfg.InputFormat = input
	}
	if output != "" {
		cfg.OutputFormat = output
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	i18n.SetLanguage(cfg.Language)

	e := &env{
		cfg:    cfg,
		log:    logging.New(stdio.Err, cfg),
		stdio:  stdio,
		parse:  cfg.ParseOpt(),
		input:  cfg.InputFormat,
		output: cfg.OutputFormat,
	}
	e.parse.OnWarning = func(pe *gojmap.ParseError) {
		e.log.Warn().Str("code", pe.Code).Str("path", pe.Path).Msg("duplicate key")
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	for _, c := range commands {
		if c.name == name {
			return c.run(e, rest)
		}
	}
	return usageError("unknown command %q", name)
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "jmapctl: JMAP data model tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  jmapctl [flags] <command> [command flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}

func subcommandFlags(e *env, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(e.stdio.Err)
	return fs
}

func parseSubcommand(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	if fs.NArg() > 1 {
		return usageError("%s: at most one input file", fs.Name())
	}
	return nil
}
