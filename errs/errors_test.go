package errs

import (
	"errors"
	"testing"

	"github.com/napalu/chaincli/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestErrorFamilies(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kinds    []error
		notKinds []error
	}{
		{"unknown subcommand", ErrUnknownSubcommand.WithArgs("x", "app"), []error{ErrCommandNotFound, ErrCLI}, []error{ErrMalformedCommand}},
		{"unknown argument", ErrUnknownArgument.WithArgs("--x", "app"), []error{ErrMalformedCommand, ErrCLI}, []error{ErrMissingArgument}},
		{"value on flag", ErrValueOnFlag.WithArgs("force", "1"), []error{ErrMalformedCommand}, []error{ErrTypeParse}},
		{"repeated", ErrRepeatedArgument.WithArgs("env"), []error{ErrMalformedCommand}, nil},
		{"excess positional", ErrExcessPositional.WithArgs("x", "app"), []error{ErrMalformedCommand}, nil},
		{"missing value", ErrMissingValue.WithArgs("env"), []error{ErrMissingArgument, ErrCLI}, []error{ErrMalformedCommand}},
		{"required", ErrRequiredArgument.WithArgs("env"), []error{ErrMissingArgument}, nil},
		{"exclusive", ErrExclusiveGroup.WithArgs("a", "b", "g"), []error{ErrGroupParse, ErrCLI}, []error{ErrRegistration}},
		{"inclusive", ErrInclusiveGroup.WithArgs("a", "g"), []error{ErrGroupParse}, nil},
		{"duplicate argument", ErrDuplicateArgument.WithArgs("a", "b"), []error{ErrRegistration, ErrCLI}, []error{ErrGroupParse}},
		{"frozen", ErrTreeFrozen, []error{ErrRegistration, ErrCLI}, nil},
		{"nil tree", ErrNilCommandTree, []error{ErrRegistration, ErrCLI}, []error{ErrEmptyName}},
		{"invalid type", ErrInvalidArgumentType.WithArgs("a", "b"), []error{ErrCLI}, []error{ErrRegistration}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range tt.kinds {
				assert.ErrorIs(t, tt.err, kind)
			}
			for _, kind := range tt.notKinds {
				assert.NotErrorIs(t, tt.err, kind)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := ErrCommandNotFound.WithArgs("missing", "deploy -> prod")
	assert.Equal(t, "command not found: 'missing' in path [deploy -> prod]", err.Error())

	wrapped := ErrTypeParse.WithArgs("abc", "port", "int").Wrap(errors.New("invalid syntax"))
	assert.Equal(t, "invalid value 'abc' for argument 'port': expected int: invalid syntax", wrapped.Error())
}

func TestUpdateMessageProvider(t *testing.T) {
	original := ErrEmptyName.Error()

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	bundle.SetDefaultLanguage(language.German)

	UpdateMessageProvider(i18n.NewBundleMessageProvider(bundle))
	defer UpdateMessageProvider(nil)

	assert.NotEqual(t, original, ErrEmptyName.Error())
	assert.Equal(t, "Name darf nicht leer sein", ErrEmptyName.Error())
	assert.Contains(t, ErrMissingValue.WithArgs("env").Error(), "env")

	UpdateMessageProvider(nil)
	assert.Equal(t, original, ErrEmptyName.Error())
}
