package chaincli

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// Converter turns the raw text of an Option or Positional argument into a typed value
type Converter interface {
	// Parse converts raw; the returned error is wrapped by the parser with argument context
	Parse(raw string) (any, error)
	// TypeName names the target type in help and error output
	TypeName() string
}

type converterFunc[T any] struct {
	name  string
	parse func(string) (T, error)
}

func (c converterFunc[T]) Parse(raw string) (any, error) {
	return c.parse(raw)
}

func (c converterFunc[T]) TypeName() string {
	return c.name
}

// ConverterOf returns a Converter producing values of type T. The type name is derived from T with
// DefaultTypeNameConverter, e.g. LogLevel becomes "log-level".
//
// Usage example:
//
//	level := ConverterOf(func(s string) (LogLevel, error) { return ParseLogLevel(s) })
//	cmd.AddArgument(NewOption("level", level))
func ConverterOf[T any](parse func(string) (T, error)) Converter {
	t := reflect.TypeOf((*T)(nil)).Elem()
	name := t.Name()
	if name == "" {
		name = t.String()
	} else {
		name = DefaultTypeNameConverter(name)
	}
	return NamedConverter(name, parse)
}

// NamedConverter returns a Converter producing values of type T, reported as name
func NamedConverter[T any](name string, parse func(string) (T, error)) Converter {
	return converterFunc[T]{name: name, parse: parse}
}

// Built-in converters
var (
	// String keeps the raw value
	String = NamedConverter("string", func(s string) (string, error) {
		return s, nil
	})

	// Int parses base-10 integers into int
	Int = NamedConverter("int", func(s string) (int, error) {
		v, err := strconv.ParseInt(s, 10, strconv.IntSize)
		return int(v), err
	})

	// Int64 parses integers into int64
	Int64 = NamedConverter("int64", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})

	// Uint parses non-negative integers into uint
	Uint = NamedConverter("uint", func(s string) (uint, error) {
		v, err := strconv.ParseUint(s, 10, strconv.IntSize)
		return uint(v), err
	})

	// Float parses float64 values
	Float = NamedConverter("float", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})

	// Bool accepts the literals understood by strconv.ParseBool
	Bool = NamedConverter("bool", strconv.ParseBool)

	// Duration parses time.Duration values such as "1m30s"
	Duration = NamedConverter("duration", time.ParseDuration)

	// Time parses dates and timestamps in any common layout
	Time = NamedConverter("time", func(s string) (time.Time, error) {
		return dateparse.ParseAny(s)
	})

	// UUID parses RFC 4122 identifiers
	UUID = NamedConverter("uuid", uuid.Parse)
)

// Enum accepts exactly one of the given values (case-sensitive) and produces a string
func Enum(values ...string) Converter {
	accepted := slices.Clone(values)
	name := "one of [" + strings.Join(accepted, "|") + "]"
	return NamedConverter(name, func(s string) (string, error) {
		if slices.Contains(accepted, s) {
			return s, nil
		}
		return "", fmt.Errorf("%q is not %s", s, name)
	})
}
