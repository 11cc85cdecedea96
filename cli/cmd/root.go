// Package cmd implements nufmt's command-line interface: argument parsing,
// config discovery, and the parallel file-formatting driver, all built on
// cobra the way the rest of this stack's tooling is.
package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nufmt/nufmt/internal/format"
)

var log = logrus.New()

var (
	rootCmd = &cobra.Command{
		Use:          "nufmt [files...]",
		Short:        "nufmt",
		SilenceUsage: true,
		Long:         `nufmt formats nushell-style scripts. With no files given, it reads from stdin.`,
		RunE:         runFormat,
	}

	// flags shared by the root command's formatting run.
	checkFlag    bool
	stdinFlag    bool
	configPath   string
	colorMode    string
	overrideFlag configOverrides
)

// configOverrides holds the value of every per-Config-field flag. A flag
// left at its zero value was not passed, so LoadConfig's result is used
// unmodified for that field; cobra's Changed lookup is what tells the two
// cases apart.
type configOverrides struct {
	indentWidth    int
	maxWidth       int
	quoteStyle     string
	bracketSpacing string
	trailingComma  string
}

// Execute runs the CLI. main exits 1 for an error wrapping
// ErrWouldReformat and 2 for any other non-nil error.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&checkFlag, "check", false, "report files that would be reformatted, don't write them")
	rootCmd.PersistentFlags().BoolVar(&stdinFlag, "stdin", false, "format stdin and write the result to stdout")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a .nufmt.yaml config file (default: search upward from the current directory)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize diff output: auto, always, or never")

	rootCmd.PersistentFlags().IntVar(&overrideFlag.indentWidth, "indent-width", 0, "override indent_width")
	rootCmd.PersistentFlags().IntVar(&overrideFlag.maxWidth, "max-width", 0, "override max_width")
	rootCmd.PersistentFlags().StringVar(&overrideFlag.quoteStyle, "quote-style", "", "override quote_style: preserve, double, or single")
	rootCmd.PersistentFlags().StringVar(&overrideFlag.bracketSpacing, "bracket-spacing", "", "override bracket_spacing: spaced or compact")
	rootCmd.PersistentFlags().StringVar(&overrideFlag.trailingComma, "trailing-comma", "", "override trailing_comma: always or never")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(debugCmd)

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return rootCmd.Execute()
}

// resolveConfig loads the config file in effect for dir, applying any
// flags the user passed on top of it.
func resolveConfig(dir string) (format.Config, error) {
	var cfg format.Config
	var err error
	if configPath != "" {
		cfg, err = readConfigFile(configPath)
	} else {
		cfg, err = LoadConfig(dir)
	}
	if err != nil {
		return format.Config{}, err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("indent-width") {
		cfg.IndentWidth = overrideFlag.indentWidth
	}
	if flags.Changed("max-width") {
		cfg.MaxWidth = overrideFlag.maxWidth
	}
	if flags.Changed("quote-style") {
		if err := (&cfg.QuoteStyle).UnmarshalYAML(stringUnmarshaler(overrideFlag.quoteStyle)); err != nil {
			return format.Config{}, err
		}
	}
	if flags.Changed("bracket-spacing") {
		if err := (&cfg.BracketSpacing).UnmarshalYAML(stringUnmarshaler(overrideFlag.bracketSpacing)); err != nil {
			return format.Config{}, err
		}
	}
	if flags.Changed("trailing-comma") {
		if err := (&cfg.TrailingComma).UnmarshalYAML(stringUnmarshaler(overrideFlag.trailingComma)); err != nil {
			return format.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return format.Config{}, err
	}
	return cfg, nil
}

// stringUnmarshaler adapts a plain string into the `func(any) error`
// shape the Config enum types' UnmarshalYAML expects, so flag values can
// reuse the exact same parsing the YAML file goes through.
func stringUnmarshaler(s string) func(any) error {
	return func(out any) error {
		if ptr, ok := out.(*string); ok {
			*ptr = s
		}
		return nil
	}
}

// colorEnabled decides whether diff output should be colorized, honoring
// --color and falling back to whether stdout is a terminal.
func colorEnabled(w io.Writer) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isatty.IsTerminal(f.Fd())
	}
}

func init() {
	color.NoColor = false
}

func runFormat(cmd *cobra.Command, args []string) error {
	if stdinFlag || len(args) == 0 {
		return runStdin(cmd)
	}
	return runFiles(args)
}
