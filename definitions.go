package chaincli

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/chaincli/types"
)

// PrettyPrintConfig is used to print the command tree in CommandTree.Print
type PrettyPrintConfig struct {
	// NewCommandPrefix precedes the start of a new top-level command
	NewCommandPrefix string
	// DefaultPrefix precedes sub-commands by default
	DefaultPrefix string
	// TerminalPrefix precedes terminal commands, i.e. commands which don't have sub-commands
	TerminalPrefix string
	// LevelBindPrefix is used for indentation. The indentation is repeated for each level under the root.
	// Top-level commands are at level 1; each sub-command increases the level by 1.
	LevelBindPrefix string
}

// DefaultPrettyPrintConfig renders the tree with box-drawing characters
var DefaultPrettyPrintConfig = PrettyPrintConfig{
	NewCommandPrefix: " **  ",
	DefaultPrefix:    " ├─ ",
	TerminalPrefix:   " └─ ",
	LevelBindPrefix:  "  ",
}

// ConfigureArgumentFunc is used when defining Flag, Option and Positional arguments
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command, err *error)

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureAppFunc is used when defining App options
type ConfigureAppFunc func(app *App, err *error)

// CommandFunc callback - optionally specified as part of a Command, gets called by App when the command is matched
type CommandFunc func(ctx *Context) error

// NameConversionFunc converts a Go identifier to a display name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "log-level"
	ToKebabCase NameConversionFunc = strcase.ToKebab

	// ToSnakeCase converts a string to snake case "log_level"
	ToSnakeCase NameConversionFunc = strcase.ToSnake

	// ToLowerCamel converts a string to lower camel case "logLevel"
	ToLowerCamel NameConversionFunc = strcase.ToLowerCamel

	// ToLowerCase converts a string to lower case "loglevel"
	ToLowerCase NameConversionFunc = strings.ToLower

	// DefaultTypeNameConverter names custom converter types in help and error output
	DefaultTypeNameConverter = ToKebabCase
)

// DefaultListDelimiter splits the values of repeatable options on ','
var DefaultListDelimiter types.ListDelimiterFunc = func(r rune) bool {
	return r == ','
}

const (
	longPrefix  = "--"
	shortPrefix = "-"
	pathSep     = " -> "
)
