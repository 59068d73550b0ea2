package chaincli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/chaincli/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppConfig(t *testing.T) {
	want := AppConfig{
		Name:           "deployer",
		Title:          "Deployer",
		Description:    "Ships builds",
		Version:        "1.4.0",
		ListDelimiters: ",;",
		Language:       "de",
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "app.toml", `
name = "deployer"
title = "Deployer"
description = "Ships builds"
version = "1.4.0"
list_delimiters = ",;"
language = "de"
`},
		{"yaml", "app.yaml", `
name: deployer
title: Deployer
description: Ships builds
version: 1.4.0
list_delimiters: ",;"
language: de
`},
		{"yml extension", "APP.YML", `
name: deployer
title: Deployer
description: Ships builds
version: "1.4.0"
list_delimiters: ",;"
language: de
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAppConfig(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadAppConfig_Errors(t *testing.T) {
	_, err := LoadAppConfig(writeConfig(t, "app.json", `{}`))
	assert.ErrorIs(t, err, errs.ErrUnsupportedConfigFormat)
	assert.Contains(t, err.Error(), ".json")

	_, err = LoadAppConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, errs.ErrConfigLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadAppConfig(writeConfig(t, "bad.toml", `name = `))
	assert.ErrorIs(t, err, errs.ErrConfigLoad)

	_, err = LoadAppConfig(writeConfig(t, "unknown.toml", `colour = "red"`))
	assert.ErrorIs(t, err, errs.ErrConfigLoad, "unknown keys are rejected")

	_, err = LoadAppConfig(writeConfig(t, "unknown.yaml", "colour: red\n"))
	assert.ErrorIs(t, err, errs.ErrConfigLoad, "unknown keys are rejected")
}

func TestParseAppConfig(t *testing.T) {
	cfg, err := ParseAppConfig(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, AppConfig{}, cfg)

	cfg, err = ParseAppConfig([]byte(`name = "x"`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Name)

	_, err = ParseAppConfig([]byte(`name = "x"`), "ini")
	assert.ErrorIs(t, err, errs.ErrUnsupportedConfigFormat)
}
