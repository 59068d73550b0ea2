// Package messages holds the translation keys of help and version output.
package messages

const (
	MsgUsageKey       = "chaincli.msg.usage"
	MsgCommandsKey    = "chaincli.msg.commands"
	MsgArgumentsKey   = "chaincli.msg.arguments"
	MsgGroupsKey      = "chaincli.msg.groups"
	MsgRequiredKey    = "chaincli.msg.required"
	MsgOptionalKey    = "chaincli.msg.optional"
	MsgRepeatableKey  = "chaincli.msg.repeatable"
	MsgDefaultsToKey  = "chaincli.msg.defaults_to"
	MsgOrKey          = "chaincli.msg.or"
	MsgVersionKey     = "chaincli.msg.version"
	MsgExclusiveKey   = "chaincli.msg.exclusive"
	MsgInclusiveKey   = "chaincli.msg.inclusive"
	MsgHelpHintKey    = "chaincli.msg.help_hint"
	MsgShowHelpKey    = "chaincli.msg.show_help"
	MsgShowVersionKey = "chaincli.msg.show_version"
)
