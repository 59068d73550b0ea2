package errs

// Translation keys of the error messages
const (
	ErrCLIKey                       = "chaincli.error.cli"
	ErrRegistrationKey              = "chaincli.error.registration"
	ErrCommandNotFoundKey           = "chaincli.error.command_not_found"
	ErrUnknownSubcommandKey         = "chaincli.error.unknown_subcommand"
	ErrMalformedCommandKey          = "chaincli.error.malformed_command"
	ErrUnknownArgumentKey           = "chaincli.error.unknown_argument"
	ErrValueOnFlagKey               = "chaincli.error.value_on_flag"
	ErrRepeatedArgumentKey          = "chaincli.error.repeated_argument"
	ErrExcessPositionalKey          = "chaincli.error.excess_positional"
	ErrMissingArgumentKey           = "chaincli.error.missing_argument"
	ErrMissingValueKey              = "chaincli.error.missing_value"
	ErrRequiredArgumentKey          = "chaincli.error.required_argument"
	ErrTypeParseKey                 = "chaincli.error.type_parse"
	ErrGroupParseKey                = "chaincli.error.group_parse"
	ErrExclusiveGroupKey            = "chaincli.error.exclusive_group"
	ErrInclusiveGroupKey            = "chaincli.error.inclusive_group"
	ErrInvalidArgumentTypeKey       = "chaincli.error.invalid_argument_type"
	ErrDuplicateArgumentKey         = "chaincli.error.duplicate_argument"
	ErrDuplicateCommandKey          = "chaincli.error.duplicate_command"
	ErrDuplicateGroupKey            = "chaincli.error.duplicate_group"
	ErrOverlappingExclusiveGroupKey = "chaincli.error.overlapping_exclusive_group"
	ErrUnknownGroupMemberKey        = "chaincli.error.unknown_group_member"
	ErrEmptyGroupKey                = "chaincli.error.empty_group"
	ErrEmptyNameKey                 = "chaincli.error.empty_name"
	ErrTreeFrozenKey                = "chaincli.error.tree_frozen"
	ErrInvalidCommandNameKey        = "chaincli.error.invalid_command_name"
	ErrNilCommandTreeKey            = "chaincli.error.nil_command_tree"
	ErrUnsupportedConfigFormatKey   = "chaincli.error.unsupported_config_format"
	ErrConfigLoadKey                = "chaincli.error.config_load"
)
