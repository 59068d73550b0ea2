package chaincli

// WithShortFlag sets the alternative short form of a Flag or Option, addressed as '-s' on the command line.
// No maximum length is enforced; positional arguments reject a short form at registration.
func WithShortFlag(shortFlag string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Short = shortFlag
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// SetRequired when true, the argument must be supplied on the command-line unless it has a default value
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// SetRepeatable when true, the argument accumulates an ordered sequence of values across occurrences.
// Only Options and the last Positional of a command may be repeatable.
func SetRepeatable(repeatable bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Repeatable = repeatable
	}
}

// WithDefaultValue sets the raw default value used when the argument is absent. The value is converted at
// registration time and a value the converter rejects is a registration error.
func WithDefaultValue(defaultValue string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValues = []string{defaultValue}
	}
}

// WithDefaultValues sets several raw default values for a repeatable argument
func WithDefaultValues(defaultValues ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValues = append([]string(nil), defaultValues...)
	}
}

// WithConverter replaces the value converter of an Option or Positional
func WithConverter(converter Converter) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Converter = converter
	}
}
