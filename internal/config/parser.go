package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/inkwell/internal/ports"
	inkerrors "github.com/alexisbeaulieu97/inkwell/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is the YAML file to read. A missing file is not an error unless
	// Required is set.
	Path     string
	Required bool
	// Environ replaces os.Environ for environment overrides when non-nil.
	Environ map[string]string
	Logger  ports.Logger
}

// Load builds the effective configuration: defaults, then the YAML file,
// then environment overrides, then validation.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg := Defaults()

	if opts.Path != "" {
		found, err := readFile(opts.Path, &cfg)
		if err != nil {
			return nil, err
		}
		if !found && opts.Required {
			return nil, inkerrors.NewParseError(opts.Path, 0, os.ErrNotExist)
		}
		if opts.Logger != nil {
			opts.Logger.Debug(ctx, "config file resolved", "path", opts.Path, "found", found)
		}
	}

	envOpts := env.Options{}
	if opts.Environ != nil {
		envOpts.Environment = opts.Environ
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return nil, inkerrors.NewValidationError("env", err.Error(), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.Debug(ctx, "config loaded",
			"language", cfg.Language,
			"storage", cfg.Storage,
			"data_dir", cfg.DataDir,
		)
	}
	return &cfg, nil
}

// Parse decodes YAML data on top of the defaults and validates the result.
// It does not consult the environment.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, inkerrors.NewParseError("<inline>", extractLine(err), err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, inkerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return true, inkerrors.NewParseError(path, extractLine(err), err)
	}
	return true, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
