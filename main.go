package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rmitchellscott/reather/airports"
	"github.com/rmitchellscott/reather/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Define command-line flags
	configFlag := flag.String("config", "", "Path to a YAML config file (default reather.yaml if present)")
	addressesFlag := flag.String("addresses", "", "Path to the stored address file")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	debugFlag := flag.Bool("debug", false, "Enable debug logging on stderr")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true // disables colorized output globally
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *addressesFlag != "" {
		cfg.AddressFile = *addressesFlag
	}
	if *debugFlag {
		cfg.LogLevel = "debug"
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := NewClient(cfg)

	fmt.Println("Loading airport data...")
	dir := airports.NewDirectory()
	stats, err := dir.Init(ctx, airports.HTTPSource{
		URL:       cfg.Endpoints.AirportsCSV,
		Client:    client.HTTPClient(),
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: failed to initialize airport data: %v\n", err)
		return 1
	}
	fmt.Printf("Loaded %d airport codes.\n", stats.Keys)

	a := &app{
		cfg:    cfg,
		client: client,
		dir:    dir,
		book:   AddressBook{Path: resolveAddressFile(cfg.AddressFile)},
		con:    newConsole(os.Stdin, os.Stdout, os.Stderr),
	}
	if err := a.run(ctx); err != nil && ctx.Err() == nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
