// Package errs defines the translatable sentinel errors returned by chaincli. Every error satisfies
// errors.Is(err, ErrCLI); the parse-time kinds and the registration family can be matched as well as the precise
// failure inside a kind.
package errs

import (
	"github.com/napalu/chaincli/i18n"
)

// ErrCLI is the ancestor of every chaincli error
var ErrCLI = i18n.NewError(ErrCLIKey)

// Parse-time error kinds
var (
	ErrCommandNotFound  = i18n.NewChildError(ErrCommandNotFoundKey, ErrCLI)
	ErrMalformedCommand = i18n.NewChildError(ErrMalformedCommandKey, ErrCLI)
	ErrMissingArgument  = i18n.NewChildError(ErrMissingArgumentKey, ErrCLI)
	ErrTypeParse        = i18n.NewChildError(ErrTypeParseKey, ErrCLI)
	ErrGroupParse       = i18n.NewChildError(ErrGroupParseKey, ErrCLI)
	// ErrInvalidArgumentType is raised at registration for an invalid converter/kind combination and when a value
	// is requested from a Context with the wrong Go type
	ErrInvalidArgumentType = i18n.NewChildError(ErrInvalidArgumentTypeKey, ErrCLI)
)

// Precise parse-time failures, each matching its kind
var (
	ErrUnknownSubcommand = i18n.NewChildError(ErrUnknownSubcommandKey, ErrCommandNotFound)
	ErrUnknownArgument   = i18n.NewChildError(ErrUnknownArgumentKey, ErrMalformedCommand)
	ErrValueOnFlag       = i18n.NewChildError(ErrValueOnFlagKey, ErrMalformedCommand)
	ErrRepeatedArgument  = i18n.NewChildError(ErrRepeatedArgumentKey, ErrMalformedCommand)
	ErrExcessPositional  = i18n.NewChildError(ErrExcessPositionalKey, ErrMalformedCommand)
	ErrMissingValue      = i18n.NewChildError(ErrMissingValueKey, ErrMissingArgument)
	ErrRequiredArgument  = i18n.NewChildError(ErrRequiredArgumentKey, ErrMissingArgument)
	ErrExclusiveGroup    = i18n.NewChildError(ErrExclusiveGroupKey, ErrGroupParse)
	ErrInclusiveGroup    = i18n.NewChildError(ErrInclusiveGroupKey, ErrGroupParse)
)

// Registration errors are programmer errors detected while building the command tree
var (
	ErrRegistration              = i18n.NewChildError(ErrRegistrationKey, ErrCLI)
	ErrDuplicateArgument         = i18n.NewChildError(ErrDuplicateArgumentKey, ErrRegistration)
	ErrDuplicateCommand          = i18n.NewChildError(ErrDuplicateCommandKey, ErrRegistration)
	ErrDuplicateGroup            = i18n.NewChildError(ErrDuplicateGroupKey, ErrRegistration)
	ErrOverlappingExclusiveGroup = i18n.NewChildError(ErrOverlappingExclusiveGroupKey, ErrRegistration)
	ErrUnknownGroupMember        = i18n.NewChildError(ErrUnknownGroupMemberKey, ErrRegistration)
	ErrEmptyGroup                = i18n.NewChildError(ErrEmptyGroupKey, ErrRegistration)
	ErrEmptyName                 = i18n.NewChildError(ErrEmptyNameKey, ErrRegistration)
	ErrTreeFrozen                = i18n.NewChildError(ErrTreeFrozenKey, ErrRegistration)
	ErrInvalidCommandName        = i18n.NewChildError(ErrInvalidCommandNameKey, ErrRegistration)
	ErrNilCommandTree            = i18n.NewChildError(ErrNilCommandTreeKey, ErrRegistration)
)

// Configuration errors
var (
	ErrUnsupportedConfigFormat = i18n.NewChildError(ErrUnsupportedConfigFormatKey, ErrCLI)
	ErrConfigLoad              = i18n.NewChildError(ErrConfigLoadKey, ErrCLI)
)

// UpdateMessageProvider renders every chaincli error through provider. Passing nil restores the embedded catalogs.
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
}
