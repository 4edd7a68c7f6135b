package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tripcraft/internal/cli"
	"github.com/julianstephens/tripcraft/internal/constants"
	"github.com/julianstephens/tripcraft/internal/errors"
	"github.com/julianstephens/tripcraft/internal/logger"
	"github.com/julianstephens/tripcraft/internal/scheduler"
	"github.com/julianstephens/tripcraft/internal/storage"
)

var CLI struct {
	Version         kong.VersionFlag
	Config          string `help:"Storage path. A .json path uses the JSON file backend, anything else SQLite." default:"~/.config/tripcraft/tripcraft.db"`
	SchedulerConfig string `help:"Path to a JSON file overriding scheduler timing parameters." type:"path"`
	Debug           bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize tripcraft storage."`
	New      cli.NewCmd      `cmd:"" help:"Interactively create a trip request file."`
	Plan     cli.PlanCmd     `cmd:"" help:"Generate an itinerary from a trip request file."`
	Show     cli.ShowCmd     `cmd:"" help:"Show a saved itinerary."`
	List     cli.ListCmd     `cmd:"" help:"List saved itineraries."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a saved itinerary."`
	Validate cli.ValidateCmd `cmd:"" help:"Check a saved itinerary for scheduling conflicts."`
	Serve    cli.ServeCmd    `cmd:"" help:"Run the HTTP API server."`
	Tui      cli.TuiCmd      `cmd:"" help:"Browse a saved itinerary interactively."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Trip itinerary generator / day scheduler"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := scheduler.DefaultConfig()
	if CLI.SchedulerConfig != "" {
		loaded, err := scheduler.LoadConfigFromFile(CLI.SchedulerConfig)
		if err != nil {
			errors.Fatal(err)
		}
		cfg = loaded
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.New(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}
	defer store.Close()

	err := ctx.Run(&cli.Context{
		Store:  store,
		Config: cfg,
	})
	if err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
