package chaincli

// WithCallback sets the callback function for the command. App runs it when the command is the deepest command
// matched on the command line.
func WithCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.Callback = callback
	}
}

// WithCommandDescription sets the one-line description shown in command listings
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.Description = description
	}
}

// WithLongDescription sets the description shown in the command's own help
func WithLongDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.LongDescription = description
	}
}

// WithArgument is a wrapper for AddArgument
func WithArgument(argument *Argument) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddArgument(argument)
	}
}

// WithArguments registers several arguments in order
func WithArguments(arguments ...*Argument) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, a := range arguments {
			if *err = command.AddArgument(a); *err != nil {
				return
			}
		}
	}
}

// WithExclusiveGroup registers a group in which at most one of members may be supplied. The members must be
// declared before the group.
func WithExclusiveGroup(name string, members ...string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddGroup(NewExclusiveGroup(name, members...))
	}
}

// WithInclusiveGroup registers a group whose members must be supplied together. The members must be declared
// before the group.
func WithInclusiveGroup(name string, members ...string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddGroup(NewInclusiveGroup(name, members...))
	}
}

// WithGroup is a wrapper for AddGroup
func WithGroup(group *ArgumentGroup) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddGroup(group)
	}
}

// WithSubcommands attaches subcommands which are inserted together with the command
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.Subcommands = append(command.Subcommands, subcommands...)
	}
}
