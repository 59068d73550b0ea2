package chaincli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/chaincli/errs"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the application-level settings of an App. It can be declared in code or loaded from a TOML or
// YAML file with LoadAppConfig.
//
// Example TOML:
//
//	name = "deployer"
//	title = "Deployer"
//	description = "Ships builds to environments"
//	version = "1.4.0"
//	list_delimiters = ",;"
//	language = "de"
type AppConfig struct {
	// Name is the executable name and the name of the root command
	Name        string `toml:"name" yaml:"name"`
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	Version     string `toml:"version" yaml:"version"`
	// ListDelimiters lists the runes splitting repeatable option values; empty means ','
	ListDelimiters string `toml:"list_delimiters" yaml:"list_delimiters"`
	// Language selects the catalog of help and error messages, e.g. "en" or "de"
	Language string `toml:"language" yaml:"language"`
}

// Config formats understood by ParseAppConfig
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// LoadAppConfig reads an AppConfig from path. The format is chosen by extension: .toml, .yaml or .yml.
func LoadAppConfig(path string) (AppConfig, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "yml" {
		format = FormatYAML
	}
	if format != FormatTOML && format != FormatYAML {
		return AppConfig{}, errs.ErrUnsupportedConfigFormat.WithArgs(filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, errs.ErrConfigLoad.WithArgs(path).Wrap(err)
	}

	cfg, err := ParseAppConfig(data, format)
	if err != nil {
		return AppConfig{}, errs.ErrConfigLoad.WithArgs(path).Wrap(err)
	}
	return cfg, nil
}

// ParseAppConfig decodes an AppConfig in the given format (FormatTOML or FormatYAML). Unknown keys are rejected.
func ParseAppConfig(data []byte, format string) (AppConfig, error) {
	var cfg AppConfig
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return AppConfig{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to the zero config
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return AppConfig{}, err
		}
	default:
		return AppConfig{}, errs.ErrUnsupportedConfigFormat.WithArgs(format)
	}

	return cfg, nil
}
