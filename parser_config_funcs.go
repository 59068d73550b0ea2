package chaincli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/napalu/chaincli/types"
)

// WithListDelimiterFunc sets the function deciding which runes split the values of repeatable options.
// Passing nil restores DefaultListDelimiter.
func WithListDelimiterFunc(delimiterFunc types.ListDelimiterFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if delimiterFunc == nil {
			delimiterFunc = DefaultListDelimiter
		}
		parser.listDelimiter = delimiterFunc
	}
}

// WithListDelimiters splits the values of repeatable options on any rune of delimiters. An empty string disables
// splitting.
func WithListDelimiters(delimiters string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.listDelimiter = delimiterFuncOf(delimiters)
	}
}

// WithLogger sets the logger receiving debug events about parsing. Passing nil discards them.
func WithLogger(logger *log.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if logger == nil {
			logger = log.New(io.Discard)
		}
		parser.logger = logger
	}
}

func delimiterFuncOf(delimiters string) types.ListDelimiterFunc {
	if delimiters == "" {
		return nil
	}
	set := []rune(delimiters)
	return func(r rune) bool {
		for _, d := range set {
			if r == d {
				return true
			}
		}
		return false
	}
}
