package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	libraryapp "github.com/alexisbeaulieu97/inkwell/internal/application/library"
	"github.com/alexisbeaulieu97/inkwell/internal/config"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/i18n"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	Events  *events.Publisher
	Library *libraryapp.Service
	Catalog *catalog.Catalog
	Bundle  *i18n.Bundle

	loadWarning string
	logger      *logging.Logger
}

type appOptions struct {
	// interactive routes console logs away from the terminal the TUI owns.
	interactive bool
	// library opens the store and loads the saved items.
	library bool
}

// newAppContext loads configuration, builds the logger, and optionally
// opens the library. Every invocation gets its own correlation id.
func newAppContext(cmd *cobra.Command, flags *rootFlags, opts appOptions) (context.Context, *AppContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	boot := logging.NewBootstrapLogger(0)

	configPath := flags.configPath
	required := configPath != ""
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			boot.Warn(ctx, "cannot resolve home directory; using defaults", "error", err)
		}
		configPath = path
	}

	cfg, err := config.Load(ctx, config.LoadOptions{
		Path:     configPath,
		Required: required,
		Logger:   boot,
	})
	if err != nil {
		return nil, nil, newCommandError("load configuration", configPath, err, "Fix the configuration file or INKWELL_* environment variables and retry.")
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	var writer io.Writer = cmd.ErrOrStderr()
	if opts.interactive {
		writer = io.Discard
	}
	logger, err := logging.New(logging.Options{
		Writer:    writer,
		Level:     level,
		Format:    cfg.Logging.Format,
		File:      cfg.Logging.File,
		Layer:     "presentation",
		Component: "cli",
		Fields:    map[string]interface{}{"command": cmd.Name()},
	})
	if err != nil {
		return nil, nil, newCommandError("configure logging", "creating logger", err, "Check logging.level and logging.file in your configuration.")
	}
	boot.Attach(logger)

	lang := i18n.Resolve(cfg.Language, os.Getenv)
	if flags.lang != "" {
		parsed, err := i18n.Parse(flags.lang)
		if err != nil {
			_ = logger.Close()
			return nil, nil, newCommandError("select language", "parsing --lang", err, "Use --lang en or --lang es.")
		}
		lang = parsed
	}

	app := &AppContext{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog.Default(),
		Bundle:  i18n.New(lang),
		logger:  logger,
	}

	if !opts.library {
		return ctx, app, nil
	}

	store, err := storage.Open(ctx, cfg.Storage, cfg.LibraryPath(), logger.WithLayer("infrastructure"))
	if err != nil {
		_ = logger.Close()
		return nil, nil, newCommandError("open library", cfg.LibraryPath(), err, "Check data_dir permissions or switch storage in your configuration.")
	}

	app.Events = events.NewPublisher(logger.WithLayer("infrastructure").With("component", "events"))
	app.Library = libraryapp.NewService(libraryapp.Options{
		Catalog:   app.Catalog,
		Store:     store,
		Publisher: app.Events,
		Logger:    logger.WithLayer("application"),
	})

	if err := app.Library.Load(ctx); err != nil {
		if opts.interactive && errors.Is(err, library.ErrPersistenceFailure) {
			app.loadWarning = app.Bundle.T(i18n.KeyErrLoad)
		} else {
			app.Close()
			return nil, nil, newCommandError("load library", cfg.LibraryPath(), err, "Repair or move the library file, then retry.")
		}
	}

	return ctx, app, nil
}

// Close releases the store and flushes the log file.
func (a *AppContext) Close() {
	if a.Library != nil {
		if err := a.Library.Close(); err != nil {
			a.Logger.Warn(context.Background(), "closing library failed", "error", err)
		}
	}
	if a.logger != nil {
		_ = a.logger.Close()
	}
}
