package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inkerrors "github.com/alexisbeaulieu97/inkwell/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), LoadOptions{
		Path:    filepath.Join(t.TempDir(), "absent.yaml"),
		Environ: map[string]string{},
	})
	require.NoError(t, err)

	defaults := Defaults()
	assert.Equal(t, defaults, *cfg)
	assert.Equal(t, StorageJSON, cfg.Storage)
	assert.Equal(t, LanguageSystem, cfg.Language)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(context.Background(), LoadOptions{
		Path:     filepath.Join(t.TempDir(), "absent.yaml"),
		Required: true,
		Environ:  map[string]string{},
	})

	var parseErr *inkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, `language: es
data_dir: `+dataDir+`
storage: json
logging:
  level: debug
  format: json
`)

	cfg, err := Load(context.Background(), LoadOptions{
		Path: path,
		Environ: map[string]string{
			"INKWELL_STORAGE":  "sqlite",
			"INKWELL_LOG_FILE": "/tmp/inkwell.log",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, StorageSQLite, cfg.Storage, "environment overrides file")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/inkwell.log", cfg.Logging.File)
	assert.Equal(t, filepath.Join(dataDir, "library.db"), cfg.LibraryPath())
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name      string
		contents  string
		environ   map[string]string
		wantField string
	}{
		{
			name:      "unknown storage",
			contents:  "storage: postgres\n",
			wantField: "storage",
		},
		{
			name:      "unknown language",
			contents:  "language: fr\n",
			wantField: "language",
		},
		{
			name:      "bad log level from env",
			contents:  "storage: json\n",
			environ:   map[string]string{"INKWELL_LOG_LEVEL": "loud"},
			wantField: "logging.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			environ := tc.environ
			if environ == nil {
				environ = map[string]string{}
			}
			_, err := Load(context.Background(), LoadOptions{Path: writeConfig(t, tc.contents), Environ: environ})

			var validationErr *inkerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestLoad_MalformedYAMLReportsLine(t *testing.T) {
	path := writeConfig(t, "language: en\nlogging: [oops\n")

	_, err := Load(context.Background(), LoadOptions{Path: path, Environ: map[string]string{}})

	var parseErr *inkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("storage: sqlite\n"))
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "warn", cfg.Logging.Level)

	_, err = Parse([]byte("logging:\n  format: xml\n"))
	require.Error(t, err)
}

func TestValidateConfigNil(t *testing.T) {
	err := ValidateConfig(nil)
	require.Error(t, err)
}
