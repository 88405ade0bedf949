package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"skyform/internal/airports"
	"skyform/internal/config"
	"skyform/internal/eventbus"
	"skyform/internal/searchlog"
	"skyform/internal/ui"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

const usage = `skyform - flight search form for the terminal

Usage:
  skyform [flags]

Flags:
  -c, --config PATH   config file (default %s)
      --init-config   write the effective config to the config path and exit
      --version       print version and exit
  -h, --help          show this help

Environment:
  SKYFORM_ORIGIN        default origin airport code
  SKYFORM_DESTINATION   default destination airport code
  SKYFORM_DATE_FORMAT   Go time layout used to show and parse dates
  SKYFORM_LOG_FILE      log file path, empty to disable logging

Values in a .env file in the working directory are loaded first.
Press ? inside the form for the key reference.
`

func main() {
	// Parse command line arguments
	var configPath string
	var showVersion bool
	var initConfig bool
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.StringVar(&configPath, "c", "", "Config file path (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&initConfig, "init-config", false, "Write the effective config to the config path and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, config.DefaultPath())
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("skyform %s\n", version)
		return
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Printf("Error reading .env: %v\n", err)
		os.Exit(1)
	}

	// Nothing is logged until the log file is known
	log.SetOutput(io.Discard)

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, loadErr := configSvc.Load()
	if loadErr != nil {
		// Use default config; the error is shown once the UI is up
		cfg = config.DefaultConfig()
	}
	config.ApplyEnv(cfg)

	if initConfig {
		if loadErr != nil {
			fmt.Printf("Error loading config: %v\n", loadErr)
			bus.Close()
			os.Exit(1)
		}
		err := configSvc.Save(cfg)
		bus.Close()
		if err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	// Set up logging
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}
	log.Printf("Using config %s", configSvc.Path())
	if loadErr != nil {
		log.Printf("Error loading config: %v", loadErr)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			r := event.Request
			log.Printf("Search %s: %s %s -> %s, departs %s, returns %s, %d travelers, %s",
				r.ID, r.TripType, r.Origin.City, r.Destination.City,
				r.Departure.Format(cfg.DateFormat), r.Return.Format(cfg.DateFormat),
				r.Passengers.Total(), r.FareClass)
		}
	})
	searches := searchlog.NewMemoryStore(searchlog.DefaultCapacity)
	searchlog.Record(bus, searches)

	bus.Subscribe(eventbus.EventPassengerEditorRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PassengerEditorRequestedEvent); ok {
			log.Printf("Travelers editor opened with %+v", event.Current)
		}
	})

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, airports.NewStatic())

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Errors are the only events the screen reacts to
	eventChan := make(chan eventbus.DomainEvent, 100)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	})
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if loadErr != nil {
		bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Config not loaded, using defaults: %v", loadErr),
			Err:     loadErr,
		})
	}

	if os.Getenv("SKYFORM_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	// Cleanup: let in-flight handlers finish before the UI channel goes away
	bus.Close()
	close(eventChan)

	if latest, ok := searches.Latest(); ok {
		log.Printf("UI exited after %d searches, last %s", searches.Len(), latest.ID)
	} else {
		log.Printf("UI exited normally")
	}
}
