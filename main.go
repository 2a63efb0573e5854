package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"fileseek/internal/config"
	"fileseek/internal/eventbus"
	"fileseek/internal/logging"
	"fileseek/internal/search"
	"fileseek/internal/ui"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	// Parse command line arguments
	var rootDir string
	var configPath string
	var showVersion bool
	flag.StringVar(&rootDir, "root", "", "Directory to search in")
	flag.StringVar(&rootDir, "r", "", "Directory to search in (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("fileseek %s\n", version)
		return
	}

	// If no directory specified, check for remaining args
	if rootDir == "" && flag.NArg() > 0 {
		rootDir = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration, falling back to defaults on first run
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// The -root flag and positional argument override the configured default
	// for this session only
	sessionCfg := *cfg
	if rootDir != "" {
		absDir, err := filepath.Abs(rootDir)
		if err != nil {
			fmt.Printf("Error resolving path: %v\n", err)
			os.Exit(1)
		}
		sessionCfg.DefaultRoot = absDir
	}

	// Set up logging. The TUI owns the terminal, so logs go to a file.
	closeLogs, err := logging.Setup(cfg.Logging)
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeLogs(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}()
	slog.Info("starting fileseek", "version", version, "root", sessionCfg.DefaultRoot)

	// Initialize the search service; it subscribes to request events itself
	searchSvc := search.NewService(bus, sessionCfg.SearchWorkers)

	// Create UI model and program
	uiModel := ui.NewModel(bus, &sessionCfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Forward search events to the UI. Sends block so the match stream keeps
	// its order; the bus buffer absorbs bursts while the UI catches up.
	eventChan := make(chan eventbus.DomainEvent, 1024)
	forwardEvent := func(e eventbus.DomainEvent) {
		eventChan <- e
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventMatchFound,
		eventbus.EventSearchCompleted,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
	} {
		bus.Subscribe(eventType, forwardEvent)
	}

	// Pump events into the program in the background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	slog.Info("starting UI")
	if _, err := p.Run(); err != nil {
		slog.Error("error running program", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	slog.Info("UI exited normally")

	// Cleanup: stop the active search, then the bus, then the pump
	searchSvc.StopSearch()
	bus.Close()
	close(eventChan)

	// Persist toggles the user changed during the session. The first save
	// also creates the config file.
	uiModel.PersistPreferences(cfg)
	saveConfig(configSvc, cfg, configPath)
}

// loadConfig loads the config file. An explicit -config path that fails to
// parse is a hard error; the default location quietly starts from defaults.
func loadConfig(configSvc config.ConfigService, configPath string) *config.Config {
	if configPath != "" {
		cfg, err := configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Printf("Error loading config %s: %v\n", configPath, err)
			os.Exit(1)
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func saveConfig(configSvc config.ConfigService, cfg *config.Config, configPath string) {
	var err error
	if configPath != "" {
		err = configSvc.SaveToPath(cfg, configPath)
	} else {
		err = configSvc.Save(cfg)
	}
	if err != nil {
		slog.Warn("could not save config", "error", err)
	}
}
