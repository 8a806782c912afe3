package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	apppkg "github.com/kk-code-lab/rgal/internal/app"
	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/config"
	"github.com/kk-code-lab/rgal/internal/prefs"
	"github.com/kk-code-lab/rgal/internal/search"
)

var version = "dev"

var errUsage = errors.New("usage error")

type cliOptions struct {
	configPath  string
	pageSize    int
	scope       string
	theme       string
	logFile     string
	logLevel    string
	showHelp    bool
	showVersion bool
	catalogPath string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "rgal: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newFlagSet(opts *cliOptions, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("rgal", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	fs.StringVarP(&opts.configPath, "config", "c", "", "config file (default: <user config dir>/rgal/config.yaml)")
	fs.IntVar(&opts.pageSize, "page-size", 0, "assets per page")
	fs.StringVar(&opts.scope, "scope", "", "default search scope: global or category")
	fs.StringVar(&opts.theme, "theme", "", "theme when no preference is saved: light or dark")
	fs.StringVar(&opts.logFile, "log-file", "", "write log records to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&opts.showHelp, "help", "h", false, "show help")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	return fs
}

func parseArgs(args []string, stderr io.Writer) (cliOptions, *pflag.FlagSet, error) {
	var opts cliOptions
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.showHelp = true
			return opts, fs, nil
		}
		return opts, fs, fmt.Errorf("%w: %v", errUsage, err)
	}
	if opts.showHelp || opts.showVersion {
		return opts, fs, nil
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
		return opts, fs, fmt.Errorf("%w: missing catalog file (use - for stdin)", errUsage)
	case 1:
		opts.catalogPath = rest[0]
	default:
		return opts, fs, fmt.Errorf("%w: unexpected argument: %s", errUsage, rest[1])
	}
	return opts, fs, nil
}

// applyFlags overlays the flags the user actually set.
func applyFlags(cfg config.Config, opts cliOptions, fs *pflag.FlagSet) config.Config {
	if fs.Changed("page-size") {
		cfg.PageSize = opts.pageSize
	}
	if fs.Changed("scope") {
		cfg.DefaultScope = search.Scope(opts.scope)
	}
	if fs.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if fs.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg
}

func loadConfig(opts cliOptions, fs *pflag.FlagSet) (config.Config, error) {
	path, required := opts.configPath, opts.configPath != ""
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}
	cfg = applyFlags(cfg, opts, fs)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	return cfg, nil
}

// openPrefs falls back to an in-memory store so a read-only home directory
// never blocks browsing.
func openPrefs(cfg config.Config, logger *slog.Logger) prefs.Store {
	path := cfg.PreferencesPath
	if path == "" {
		p, err := prefs.DefaultPath()
		if err != nil {
			logger.Warn("no preference location; theme will not persist", "err", err)
			return prefs.NewMemoryStore()
		}
		path = p
	}
	store, err := prefs.Open(path)
	if err != nil {
		logger.Warn("preferences unavailable; theme will not persist", "path", path, "err", err)
		return prefs.NewMemoryStore()
	}
	return store
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts.showHelp {
		printHelp(stdout, fs)
		return nil
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "rgal %s\n", version)
		return nil
	}

	cfg, err := loadConfig(opts, fs)
	if err != nil {
		return err
	}

	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()

	cat, err := catalog.ReadFile(opts.catalogPath)
	if err != nil {
		return err
	}

	// UTF-8 fallback so non-Latin asset names render on minimal terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(apppkg.Options{
		Catalog:     cat,
		CatalogPath: opts.catalogPath,
		Config:      cfg,
		Logger:      logger,
		Prefs:       openPrefs(cfg, logger),
	})
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	logger.Info("exit")
	return nil
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `rgal - browse an image catalog in the terminal

USAGE:
    rgal [OPTIONS] <catalog.json | ->

The catalog is a JSON (comments allowed) array of
    {"group": "...", "categories": [{"name": "...", "images": ["..."]}]}

OPTIONS:
`)
	fmt.Fprint(w, fs.FlagUsages())
}
