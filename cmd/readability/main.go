// Command readability analyses English prose and reports structural
// counts and readability indices.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/kimryan/Readability/internal/config"
	"github.com/kimryan/Readability/internal/discovery"
	"github.com/kimryan/Readability/internal/engine"
	"github.com/kimryan/Readability/internal/log"
	"github.com/kimryan/Readability/internal/metrics"
	"github.com/kimryan/Readability/internal/output"
	"github.com/kimryan/Readability/internal/sentence"
	"github.com/kimryan/Readability/internal/syllable"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: readability <command> [flags] [files...]

Commands:
  analyse   Report statistics and readability indices for files or stdin
  check     Enforce configured readability thresholds
  metrics   List the available metrics
  init      Generate a default .readability.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'readability <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "help", "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "analyse", "analyze":
		return runAnalyse(os.Args[2:])
	case "check":
		return runCheck(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "readability: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("readability %s\n", version)
}

// runAnalyse implements the "analyse" subcommand.
func runAnalyse(args []string) int {
	fs := flag.NewFlagSet("analyse", flag.ContinueOnError)
	var (
		configPath string
		format     string
		metricList string
		markdown   bool
		total      bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.StringVarP(&metricList, "metrics", "m", "", "Comma-separated metrics to print per file instead of the full report")
	fs.BoolVar(&markdown, "markdown", false, "Extract prose from Markdown input before analysis")
	fs.BoolVar(&total, "total", false, "Accumulate all inputs into one combined result (sentence count reflects the last input only)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log per-file progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability analyse [flags] [files...]\n\n"+
			"Report statistics and readability indices.\n\n"+
			"Files can be paths, directories (walked recursively for text and\n"+
			"Markdown files), or glob patterns. With no file arguments, reads\n"+
			"from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	selected, err := selectedMetrics(metricList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}

	runner, code := newRunner(cfg, markdown, total, verbose)
	if runner == nil {
		return code
	}

	var result *engine.Result
	if fs.NArg() == 0 {
		if !isStdinPipe() {
			return 0
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: reading stdin: %v\n", err)
			return 2
		}
		result = runner.RunBlock("<stdin>", string(source))
	} else {
		files, err := discovery.Resolve(fs.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "readability: %v\n", err)
			return 2
		}
		if len(files) == 0 {
			return 0
		}
		result = runner.Run(files)
	}

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "readability: %v\n", e)
	}

	formatter := resultFormatter(format, selected)
	if err := formatter.FormatResults(os.Stdout, result.Files); err != nil {
		fmt.Fprintf(os.Stderr, "readability: error writing output: %v\n", err)
		return 2
	}

	if len(result.Errors) > 0 && len(result.Files) == 0 {
		return 2
	}
	return 0
}

// runCheck implements the "check" subcommand: enforce thresholds.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
		quiet      bool
		markdown   bool
		verbose    bool

		maxFog     float64
		maxKincaid float64
		minFlesch  float64
		maxWPS     float64
		maxComplex float64
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVar(&markdown, "markdown", false, "Extract prose from Markdown input before analysis")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log per-file progress to stderr")
	fs.Float64Var(&maxFog, "max-fog", 0, "Maximum Gunning-Fog index")
	fs.Float64Var(&maxKincaid, "max-kincaid", 0, "Maximum Flesch-Kincaid grade level")
	fs.Float64Var(&minFlesch, "min-flesch", 0, "Minimum Flesch reading ease")
	fs.Float64Var(&maxWPS, "max-words-per-sentence", 0, "Maximum average words per sentence")
	fs.Float64Var(&maxComplex, "max-percent-complex", 0, "Maximum percentage of complex words")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability check [flags] [files...]\n\n"+
			"Analyse files and fail when readability thresholds are exceeded.\n\n"+
			"Thresholds come from .readability.yml and can be overridden by\n"+
			"flags. Exit code 1 means at least one threshold was violated.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}
	applyThresholdFlags(fs, cfg, maxFog, maxKincaid, minFlesch, maxWPS, maxComplex)

	files, err := discovery.Resolve(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	runner, code := newRunner(cfg, markdown, false, verbose)
	if runner == nil {
		return code
	}

	result := runner.Run(files)

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "readability: %v\n", e)
	}

	diagnostics := engine.Check(result.Files, cfg)

	if len(result.Errors) > 0 && len(diagnostics) == 0 {
		return 2
	}

	if !quiet && len(diagnostics) > 0 {
		var formatter output.Formatter
		switch format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			formatter = &output.TextFormatter{Color: !noColor}
		}

		if err := formatter.FormatDiagnostics(os.Stderr, diagnostics); err != nil {
			fmt.Fprintf(os.Stderr, "readability: error writing output: %v\n", err)
			return 2
		}
	}

	if len(diagnostics) > 0 {
		return 1
	}
	return 0
}

// runMetrics implements the "metrics" subcommand: list definitions.
func runMetrics(args []string) int {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability metrics\n\n"+
			"List the metrics available to --metrics.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	for _, def := range metrics.All() {
		fmt.Printf("%-8s %-20s %s\n", def.ID, def.Name, def.Description)
	}
	return 0
}

// runInit implements the "init" subcommand: generate .readability.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readability init\n\n"+
			"Generate a default .readability.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readability: init takes no arguments\n")
		return 2
	}

	const configFile = ".readability.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "readability: %s already exists\n", configFile)
		return 2
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "readability: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "readability: created %s\n", configFile)
	return 0
}

// newRunner wires the engine with the real collaborators. A nil
// runner means setup failed and the returned code should be used.
func newRunner(cfg *config.Config, markdown, total, verbose bool) (*engine.Runner, int) {
	splitter, err := sentence.NewSplitter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "readability: %v\n", err)
		return nil, 2
	}

	return &engine.Runner{
		Config:   cfg,
		Splitter: splitter,
		Counter:  syllable.Counter{},
		Markdown: markdown || markdownEnabled(cfg),
		Total:    total,
		Log:      &log.Logger{Enabled: verbose, W: os.Stderr},
	}, 0
}

// selectedMetrics resolves the --metrics flag value. An empty flag
// selects nothing, which means the full report layout.
func selectedMetrics(raw string) ([]metrics.Definition, error) {
	names := metrics.SplitList(raw)
	if len(names) == 0 {
		return nil, nil
	}
	return metrics.Resolve(names)
}

// resultFormatter picks the output formatter for analyse results.
func resultFormatter(format string, selected []metrics.Definition) output.Formatter {
	switch format {
	case "json":
		return &output.JSONFormatter{}
	default:
		return &output.TextFormatter{Metrics: selected}
	}
}

// applyThresholdFlags overlays explicitly set threshold flags onto the
// loaded config.
func applyThresholdFlags(fs *flag.FlagSet, cfg *config.Config, maxFog, maxKincaid, minFlesch, maxWPS, maxComplex float64) {
	if fs.Changed("max-fog") {
		cfg.Thresholds.MaxFog = &maxFog
	}
	if fs.Changed("max-kincaid") {
		cfg.Thresholds.MaxKincaid = &maxKincaid
	}
	if fs.Changed("min-flesch") {
		cfg.Thresholds.MinFlesch = &minFlesch
	}
	if fs.Changed("max-words-per-sentence") {
		cfg.Thresholds.MaxWordsPerSentence = &maxWPS
	}
	if fs.Changed("max-percent-complex") {
		cfg.Thresholds.MaxPercentComplex = &maxComplex
	}
}

// markdownEnabled returns whether the config turns Markdown mode on.
func markdownEnabled(cfg *config.Config) bool {
	return cfg.Markdown != nil && *cfg.Markdown
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return config.Merge(defaults, loaded), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}

	return config.Merge(defaults, loaded), nil
}
