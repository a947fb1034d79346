package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/catalog"
	"github.com/mmcdole/walls/internal/config"
	"github.com/mmcdole/walls/internal/download"
	"github.com/mmcdole/walls/internal/fsys"
	"github.com/mmcdole/walls/internal/logging"
	"github.com/mmcdole/walls/internal/records"
	"github.com/mmcdole/walls/internal/store"
	"github.com/mmcdole/walls/internal/tui"
	"github.com/mmcdole/walls/internal/wallpaper"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	configFile string
	list       string
	filter     string
	reset      string
	initConfig bool
}

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configFile, "config", "", "path to config file")
	flag.StringVar(&opts.list, "list", "", "print a collection and exit: liked, downloads or catalog")
	flag.StringVar(&opts.filter, "filter", "", "fuzzy filter for the catalog listing")
	flag.StringVar(&opts.reset, "reset", "", "forget stored records and exit: liked, downloads, profile or all")
	flag.BoolVar(&opts.initConfig, "init-config", false, "write the default config file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("walls %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.initConfig {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configFile); err != nil {
			return err
		}
		fmt.Println("config written")
		return nil
	}

	// Load configuration
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, logCloser, err := logging.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = logging.NullLogger()
		logCloser = io.NopCloser(nil)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting walls", "version", Version)

	kv, err := store.NewKVStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer kv.Close()

	if opts.reset != "" {
		return resetRecords(os.Stdout, opts.reset, kv)
	}

	fs := afero.NewOsFs()
	recs := records.NewStore(kv, fsys.NewChecker(fs), logger)

	cat, err := catalog.Load(fs, cfg.Catalog.File)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded", "wallpapers", cat.Len(), "file", cfg.Catalog.File)

	// Plain output when asked, or when stdout is not a terminal
	if opts.list != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		kind := opts.list
		if kind == "" {
			kind = listCatalog
		}
		return printList(os.Stdout, kind, opts.filter, recs, cat)
	}

	downloader := download.NewClient(fs, download.Options{
		Timeout:       cfg.Downloads.Timeout,
		RatePerSecond: cfg.Downloads.RatePerSecond,
		Burst:         cfg.Downloads.Burst,
		Logger:        logger,
	})
	actions := wallpaper.NewService(downloader, wallpaper.NewSetter(cfg.Wallpaper.Setter, cfg.Wallpaper.Args, logger), recs, cfg.Downloads.Dir, logger)

	model := tui.NewModel(recs, cat, actions, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
