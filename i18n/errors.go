package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []any
	Unwrap() error
	WithArgs(args ...any) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider defines an interface for getting message templates by key
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError represents a translatable error with optional formatting arguments, error wrapping and an optional parent
// sentinel. An error derived from a child sentinel satisfies errors.Is for every ancestor of that sentinel, which lets
// callers match either a precise failure or its whole family.
//
// Example usage:
//
//	ErrBase := NewError("base.error")
//	ErrLeaf := NewChildError("leaf.error", ErrBase)
//	err := ErrLeaf.WithArgs("field").Wrap(cause)
//	errors.Is(err, ErrBase) // true
type TrError struct {
	// unique identity shared by all copies derived from the same sentinel
	sentinel error
	key      string
	args     []any
	wrapped  error
	parent   *TrError
	// nil means the package default provider, resolved when the message is rendered
	provider MessageProvider
}

// DefaultMessageProvider implements MessageProvider using a Bundle and its current default language
type DefaultMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider returns a MessageProvider backed by the given bundle
func NewBundleMessageProvider(b *Bundle) *DefaultMessageProvider {
	return &DefaultMessageProvider{bundle: b}
}

// GetMessage returns the template for key in the bundle's default language, falling back to English and finally
// to the key itself
func (p *DefaultMessageProvider) GetMessage(key string) string {
	if msg, ok := p.bundle.lookup(key); ok {
		return msg
	}
	return key
}

// NewError creates a new translatable sentinel error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// NewChildError creates a new translatable sentinel error which also matches parent with errors.Is
func NewChildError(key string, parent *TrError) *TrError {
	e := NewError(key)
	e.parent = parent
	return e
}

// Error returns the translated message, formatted with args if provided
func (e *TrError) Error() string {
	msg := e.messageProvider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...any) TranslatableError {
	c := e.clone()
	c.args = args
	return c
}

// Wrap returns a copy of the error which wraps err
func (e *TrError) Wrap(err error) TranslatableError {
	c := e.clone()
	c.wrapped = err
	return c
}

// WithProvider returns a copy of the error rendered through provider instead of the package default
func (e *TrError) WithProvider(provider MessageProvider) *TrError {
	c := e.clone()
	c.provider = provider
	return c
}

// Is implements errors.Is: an error matches its own sentinel and every ancestor sentinel
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		if e.sentinel == t.sentinel {
			return true
		}
	} else if target == e.sentinel {
		return true
	}
	if e.parent != nil {
		return e.parent.Is(target)
	}
	return false
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []any {
	return e.args
}

// Parent returns the parent sentinel or nil
func (e *TrError) Parent() *TrError {
	return e.parent
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) clone() *TrError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  e.wrapped,
		parent:   e.parent,
		provider: e.provider,
	}
}

func (e *TrError) messageProvider() MessageProvider {
	if e.provider != nil {
		return e.provider
	}
	return getDefaultProvider()
}

// Package-level provider management
var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider. Passing nil restores the embedded bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	p := defaultProvider
	defaultProviderMux.RUnlock()
	if p != nil {
		return p
	}

	return NewBundleMessageProvider(Default())
}
