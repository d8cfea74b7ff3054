// midbg is an interactive debugger front-end shell. It reads command
// lines from stdin through an interruptible stream so a Ctrl-C or
// SIGTERM unblocks the input wait and the loop exits cleanly.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/midbg/midbg/core"
	"github.com/midbg/midbg/handlers"
	"github.com/midbg/midbg/interactive"
	"github.com/midbg/midbg/lifecycle"
	"github.com/midbg/midbg/resources"
	"github.com/midbg/midbg/stdinstream"
)

var version = "1.0.0"

func main() {
	var (
		configPath  = flag.String("config", "", "Configuration file path")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("midbg %s\n", version)
		os.Exit(0)
	}

	logger := core.NewLogger(*debug)

	cfg := core.DefaultConfig()
	if *configPath != "" {
		loaded, err := core.LoadConfig(*configPath)
		if err != nil {
			logger.Warn("Using default configuration: %v", err)
		} else {
			cfg = loaded
		}
	}
	if cfg.Logging.Debug {
		logger = core.NewLogger(true)
	}
	logger.SetConsole(cfg.Logging.Console)

	if err := run(logger, cfg); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(logger *core.Logger, cfg *core.Config) error {
	res := resources.NewStore(cfg.Resources.CatalogPath)

	registry := lifecycle.NewRegistry()
	if err := registry.Register(lifecycle.ModuleFunc(lifecycle.KindLogging,
		func() error {
			if cfg.Logging.File == "" {
				return nil
			}
			return logger.SetFile(cfg.Logging.File)
		},
		logger.Close,
	)); err != nil {
		return err
	}
	if err := registry.Register(lifecycle.ModuleFunc(lifecycle.KindResources,
		res.Load,
		res.Unload,
	)); err != nil {
		return err
	}

	sink := core.NewErrorDescriptor()
	reader := stdinstream.NewReader(cfg.Stdin, registry, sink, res, logger)

	if err := reader.Initialize(); err != nil {
		return fmt.Errorf("%s: %w", sink.ErrorDescription(), err)
	}
	defer reader.Shutdown()

	interp := interactive.NewInterpreter(logger, reader, handlers.NewRegistry(), res, version)
	stop := interp.WatchSignals()
	defer stop()

	return interp.Run(context.Background())
}
