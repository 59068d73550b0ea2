package chaincli

import (
	"fmt"
	"strings"

	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/types"
)

// Argument describes one command-line argument of a Command. The Kind selects the variant:
//   - types.KindFlag: boolean presence, never takes a value
//   - types.KindOption: named, takes a value per occurrence
//   - types.KindPositional: unnamed, matched by its position among the positional tokens
//
// An Argument is owned by the command it is registered with and must not be modified afterwards.
type Argument struct {
	Name          string
	Short         string
	Description   string
	Kind          types.ArgumentKind
	Required      bool
	Repeatable    bool
	DefaultValues []string
	Converter     Converter

	// set by Command.AddArgument
	defaults       []any
	exclusiveGroup string
	err            error
}

// NewFlag creates a boolean Flag argument
func NewFlag(name string, configs ...ConfigureArgumentFunc) *Argument {
	return newArgument(types.KindFlag, name, nil, configs)
}

// NewOption creates a named Option argument whose values are produced by converter
func NewOption(name string, converter Converter, configs ...ConfigureArgumentFunc) *Argument {
	return newArgument(types.KindOption, name, converter, configs)
}

// NewPositional creates a Positional argument whose values are produced by converter
func NewPositional(name string, converter Converter, configs ...ConfigureArgumentFunc) *Argument {
	return newArgument(types.KindPositional, name, converter, configs)
}

func newArgument(kind types.ArgumentKind, name string, converter Converter, configs []ConfigureArgumentFunc) *Argument {
	a := &Argument{
		Name:      name,
		Kind:      kind,
		Converter: converter,
	}
	if err := a.Set(configs...); err != nil {
		a.err = err
	}

	return a
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// IsFlag reports whether the argument is a Flag
func (a *Argument) IsFlag() bool {
	return a.Kind == types.KindFlag
}

// IsOption reports whether the argument is an Option
func (a *Argument) IsOption() bool {
	return a.Kind == types.KindOption
}

// IsPositional reports whether the argument is a Positional
func (a *Argument) IsPositional() bool {
	return a.Kind == types.KindPositional
}

// TypeName returns the name of the value type
func (a *Argument) TypeName() string {
	if a.IsFlag() || a.Converter == nil {
		return Bool.TypeName()
	}
	return a.Converter.TypeName()
}

// HasDefault reports whether a default value was declared
func (a *Argument) HasDefault() bool {
	return len(a.DefaultValues) > 0
}

// ExclusiveGroup returns the name of the exclusive group the argument belongs to, if any
func (a *Argument) ExclusiveGroup() (string, bool) {
	return a.exclusiveGroup, a.exclusiveGroup != ""
}

// String returns a one-line description of the argument
func (a *Argument) String() string {
	var sb strings.Builder
	switch a.Kind {
	case types.KindPositional:
		sb.WriteString("<" + a.Name + ">")
	default:
		sb.WriteString(longPrefix + a.Name)
		if a.Short != "" {
			sb.WriteString(", " + shortPrefix + a.Short)
		}
	}
	fmt.Fprintf(&sb, " (%s %s", a.Kind, a.TypeName())
	if a.Required {
		sb.WriteString(", required")
	}
	if a.Repeatable {
		sb.WriteString(", repeatable")
	}
	if a.HasDefault() {
		sb.WriteString(", default: " + strings.Join(a.DefaultValues, ","))
	}
	sb.WriteString(")")
	if a.Description != "" {
		sb.WriteString(" " + a.Description)
	}

	return sb.String()
}

func (a *Argument) converter() Converter {
	if a.IsFlag() {
		return Bool
	}
	return a.Converter
}

// validate checks the argument definition and converts its defaults
func (a *Argument) validate() error {
	if a.err != nil {
		return a.err
	}
	if a.Name == "" {
		return errs.ErrEmptyName
	}
	if err := checkName(a.Name); err != nil {
		return errs.ErrInvalidArgumentType.WithArgs(a.Name, err.Error())
	}
	if a.Short != "" {
		if err := checkName(a.Short); err != nil {
			return errs.ErrInvalidArgumentType.WithArgs(a.Name, err.Error())
		}
	}

	switch a.Kind {
	case types.KindFlag:
		if a.Converter != nil {
			return errs.ErrInvalidArgumentType.WithArgs(a.Name, "flags do not take a value converter")
		}
		if a.Repeatable {
			return errs.ErrInvalidArgumentType.WithArgs(a.Name, "flags cannot be repeatable")
		}
	case types.KindOption, types.KindPositional:
		if a.Converter == nil {
			return errs.ErrInvalidArgumentType.WithArgs(a.Name, a.Kind.String()+" arguments require a value converter")
		}
		if a.IsPositional() && a.Short != "" {
			return errs.ErrInvalidArgumentType.WithArgs(a.Name, "positional arguments have no short form")
		}
	default:
		return errs.ErrInvalidArgumentType.WithArgs(a.Name, "unknown argument kind")
	}

	if len(a.DefaultValues) > 1 && !a.Repeatable {
		return errs.ErrInvalidArgumentType.WithArgs(a.Name, "only repeatable arguments accept several default values")
	}
	defaults := make([]any, 0, len(a.DefaultValues))
	for _, raw := range a.DefaultValues {
		v, err := a.converter().Parse(raw)
		if err != nil {
			return errs.ErrInvalidArgumentType.WithArgs(a.Name,
				fmt.Sprintf("default value %q is not a valid %s", raw, a.TypeName())).Wrap(err)
		}
		defaults = append(defaults, v)
	}
	a.defaults = defaults

	return nil
}

func checkName(name string) error {
	if strings.HasPrefix(name, shortPrefix) {
		return fmt.Errorf("name %q must not start with %q", name, shortPrefix)
	}
	if strings.ContainsAny(name, "= \t\n") {
		return fmt.Errorf("name %q must not contain '=' or whitespace", name)
	}
	return nil
}
