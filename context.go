package chaincli

import (
	"fmt"
	"reflect"
	"time"

	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/types"
)

type resolvedValue struct {
	arg    *Argument
	values []any
	source types.ValueSource
}

// Context is the immutable result of a successful parse. Values are addressed by argument name; every lookup also
// accepts the short form and the command-line prefixed forms ('--name', '-n').
//
// Absent or undeclared arguments are reported as not present and never cause an error. Requesting a value with a Go
// type other than the one produced by the argument's converter fails with errs.ErrInvalidArgumentType.
type Context struct {
	command *Command
	path    []string
	values  map[string]*resolvedValue
	order   []string
}

// Command returns the deepest command matched on the command line
func (c *Context) Command() *Command {
	return c.command
}

// CommandPath returns the names of the matched command chain, excluding the root
func (c *Context) CommandPath() []string {
	return append([]string(nil), c.path...)
}

// IsArgPresent reports whether the argument was supplied on the command line. Values filled in from defaults are not
// present.
func (c *Context) IsArgPresent(name string) bool {
	r, ok := c.lookup(name)
	return ok && r.source == types.SourceCommandLine
}

// IsFlagPresent reports whether name is a flag supplied on the command line
func (c *Context) IsFlagPresent(name string) bool {
	return c.isPresentKind(name, types.KindFlag)
}

// IsOptionArgPresent reports whether name is an option supplied on the command line
func (c *Context) IsOptionArgPresent(name string) bool {
	return c.isPresentKind(name, types.KindOption)
}

// IsPositionalArgPresent reports whether name is a positional argument supplied on the command line
func (c *Context) IsPositionalArgPresent(name string) bool {
	return c.isPresentKind(name, types.KindPositional)
}

// IsDefaulted reports whether the value of name comes from its declared default
func (c *Context) IsDefaulted(name string) bool {
	r, ok := c.lookup(name)
	return ok && r.source == types.SourceDefault
}

// Source returns where the value of name came from
func (c *Context) Source(name string) (types.ValueSource, bool) {
	r, ok := c.lookup(name)
	if !ok {
		return 0, false
	}
	return r.source, true
}

// Get returns the value of name, supplied or defaulted. Repeatable arguments yield a []any in command-line order.
func (c *Context) Get(name string) (any, bool) {
	r, ok := c.lookup(name)
	if !ok {
		return nil, false
	}
	if r.arg.Repeatable {
		values := make([]any, len(r.values))
		copy(values, r.values)
		return values, true
	}
	return r.values[0], true
}

// Names returns the names of all arguments holding a value, in registration order
func (c *Context) Names() []string {
	return append([]string(nil), c.order...)
}

// Map returns a copy of all values keyed by argument name
func (c *Context) Map() map[string]any {
	m := make(map[string]any, len(c.values))
	for name := range c.values {
		m[name], _ = c.Get(name)
	}
	return m
}

// GetString returns the value of a string argument
func (c *Context) GetString(name string) (string, bool, error) {
	return Value[string](c, name)
}

// GetInt returns the value of an int argument
func (c *Context) GetInt(name string) (int, bool, error) {
	return Value[int](c, name)
}

// GetFloat returns the value of a float argument
func (c *Context) GetFloat(name string) (float64, bool, error) {
	return Value[float64](c, name)
}

// GetBool returns the value of a flag or bool argument. An absent flag without default is reported as false and not
// present.
func (c *Context) GetBool(name string) (bool, bool, error) {
	return Value[bool](c, name)
}

// GetDuration returns the value of a duration argument
func (c *Context) GetDuration(name string) (time.Duration, bool, error) {
	return Value[time.Duration](c, name)
}

// Value returns the typed value of a non-repeatable argument. ok is false when the argument has no value.
//
// Usage example:
//
//	env, ok, err := chaincli.Value[string](ctx, "env")
func Value[T any](c *Context, name string) (value T, ok bool, err error) {
	r, found := c.lookup(name)
	if !found {
		return value, false, nil
	}
	if r.arg.Repeatable {
		return value, false, errs.ErrInvalidArgumentType.WithArgs(r.arg.Name,
			fmt.Sprintf("requested %s from repeatable argument, use Values", reflect.TypeOf((*T)(nil)).Elem()))
	}

	return cast[T](r.arg, r.values[0])
}

// Values returns the typed values of an argument in command-line order. A non-repeatable argument yields a single
// element.
func Values[T any](c *Context, name string) ([]T, bool, error) {
	r, found := c.lookup(name)
	if !found {
		return nil, false, nil
	}

	out := make([]T, 0, len(r.values))
	for _, v := range r.values {
		typed, _, err := cast[T](r.arg, v)
		if err != nil {
			return nil, false, err
		}
		out = append(out, typed)
	}
	return out, true, nil
}

func cast[T any](arg *Argument, v any) (T, bool, error) {
	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero, false, errs.ErrInvalidArgumentType.WithArgs(arg.Name,
			fmt.Sprintf("requested %s, holds %T (%s)", reflect.TypeOf((*T)(nil)).Elem(), v, arg.TypeName()))
	}
	return typed, true, nil
}

func (c *Context) lookup(name string) (*resolvedValue, bool) {
	arg, ok := c.command.Argument(name)
	if !ok {
		return nil, false
	}
	r, ok := c.values[arg.Name]
	return r, ok
}

func (c *Context) isPresentKind(name string, kind types.ArgumentKind) bool {
	r, ok := c.lookup(name)
	return ok && r.arg.Kind == kind && r.source == types.SourceCommandLine
}
