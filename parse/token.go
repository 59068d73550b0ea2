package parse

import (
	"strconv"
	"strings"
)

// TokenKind classifies a raw command-line token
type TokenKind int

const (
	TokenPositional TokenKind = iota // TokenPositional - a value not addressed by name
	TokenLong                        // TokenLong - '--name' or '--name=value'
	TokenShort                       // TokenShort - '-n' or '-n=value'
	TokenTerminator                  // TokenTerminator - '--', everything after it is positional
)

// Terminator ends named argument processing
const Terminator = "--"

// Token is a classified command-line token
type Token struct {
	Kind     TokenKind
	Raw      string
	Name     string // name without prefix for TokenLong and TokenShort
	Value    string // inline value of '--name=value'
	HasValue bool
}

// IsNamed reports whether the token addresses an argument by name
func (t Token) IsNamed() bool {
	return t.Kind == TokenLong || t.Kind == TokenShort
}

// Lex classifies raw. A single-dash token which parses as a number is positional unless isShort reports that the
// command declares a short form with that name, so negative values can be passed without '--'. A lone '-' is
// positional (conventionally stdin).
func Lex(raw string, isShort func(name string) bool) Token {
	switch {
	case raw == Terminator:
		return Token{Kind: TokenTerminator, Raw: raw}
	case strings.HasPrefix(raw, "--"):
		return named(TokenLong, raw, raw[2:])
	case len(raw) > 1 && raw[0] == '-':
		body := raw[1:]
		name, _, _ := strings.Cut(body, "=")
		if IsNumeric(raw) && (isShort == nil || !isShort(name)) {
			return Token{Kind: TokenPositional, Raw: raw}
		}
		return named(TokenShort, raw, body)
	}

	return Token{Kind: TokenPositional, Raw: raw}
}

// IsNumeric reports whether s parses as an integer or a float written with digits. Words such as "inf" or "nan"
// are not numeric.
func IsNumeric(s string) bool {
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || !(digits[0] == '.' || (digits[0] >= '0' && digits[0] <= '9')) {
		return false
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func named(kind TokenKind, raw, body string) Token {
	name, value, found := strings.Cut(body, "=")
	return Token{Kind: kind, Raw: raw, Name: name, Value: value, HasValue: found}
}
