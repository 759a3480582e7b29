// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"cellsign/internal/config"
	"cellsign/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Input      string // json | yaml
	ConfigPath string

	// Matching
	Separator string
	Encoding  string
	Workers   int

	// Output
	Output          string
	Sort            bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Logging
	LogMode  string
	LogLevel string
	Quiet    bool

	Version bool

	set map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: flag relevant ligand–receptor interactions that signal through active TFs

Reads one request document (JSON or YAML) on stdin and writes the active
interactions and their TF evidence to stdout.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool
	def := config.Default()

	fs.StringVar(&opt.Input, "input", "json", "request format on stdin: json | yaml [json]")
	fs.StringVar(&opt.ConfigPath, "config", "", "TOML config file (CELLSIGN_* env overrides it)")

	fs.StringVar(&opt.Separator, "separator", def.Separator, "cell-type-pair separator in column names ["+def.Separator+"]")
	fs.StringVar(&opt.Encoding, "encoding", def.Encoding, "relevance values: auto | means | flags [auto]")
	fs.IntVar(&opt.Workers, "workers", def.Workers, "concurrent column scans (0 or 1 = serial) [1]")

	fs.StringVar(&opt.Output, "output", def.Output.Format, "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", def.Output.Format, "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "order interactions by rank (unranked last) before scanning [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header lines in text output [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no interaction is active [1]")

	fs.StringVar(&opt.LogMode, "log-mode", def.Log.Mode, "log encoding: development | production [development]")
	fs.StringVar(&opt.LogLevel, "log-level", def.Log.Level, "log level: debug | info | warn | error [info]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log warnings and errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })
	if opt.set["o"] {
		opt.set["output"] = true
	}
	if opt.set["no-header"] {
		opt.set["header"] = true
	}

	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q (the request is read from stdin)", fs.Arg(0))
	}
	return opt, Validate(opt)
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	switch o.Input {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid --input %q", o.Input)
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Separator == "" {
		return errors.New("--separator must not be empty")
	}
	if o.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

// IsSet reports whether flag name was given on the command line.
func (o Options) IsSet(name string) bool { return o.set[name] }

// Apply overlays explicitly set flags onto cfg.
func (o Options) Apply(cfg *config.Config) {
	if o.IsSet("separator") {
		cfg.Separator = o.Separator
	}
	if o.IsSet("encoding") {
		cfg.Encoding = o.Encoding
	}
	if o.IsSet("workers") {
		cfg.Workers = o.Workers
	}
	if o.IsSet("output") {
		cfg.Output.Format = o.Output
	}
	if o.IsSet("header") {
		cfg.Output.Header = o.Header
	}
	if o.IsSet("sort") {
		cfg.Output.Sort = o.Sort
	}
	if o.IsSet("log-mode") {
		cfg.Log.Mode = o.LogMode
	}
	if o.IsSet("log-level") {
		cfg.Log.Level = o.LogLevel
	}
	if o.Quiet {
		cfg.Log.Level = "warn"
	}
}
