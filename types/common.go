package types

// ArgumentKind used to define the variant of an Argument (Flag, Option, Positional)
type ArgumentKind int

const (
	KindFlag       ArgumentKind = iota // KindFlag denotes a boolean presence argument which never takes a value
	KindOption                         // KindOption denotes a named argument taking a value per occurrence
	KindPositional                     // KindPositional denotes an unnamed argument matched by its position
)

// String returns the string representation of an ArgumentKind
func (k ArgumentKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	}
	return "unknown"
}

// IsNamed reports whether arguments of this kind are addressed by name on the command line
func (k ArgumentKind) IsNamed() bool {
	return k == KindFlag || k == KindOption
}

// GroupMode defines how an ArgumentGroup constrains its members
type GroupMode int

const (
	Exclusive GroupMode = iota // Exclusive - at most one member may be present
	Inclusive                  // Inclusive - if any member is present, all required members must be present
)

// String returns the string representation of a GroupMode
func (m GroupMode) String() string {
	switch m {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	}
	return "unknown"
}

// ValueSource records where a resolved argument value came from
type ValueSource int

const (
	SourceCommandLine ValueSource = iota // SourceCommandLine - supplied by the user
	SourceDefault                        // SourceDefault - filled in from the declared default
)

// String returns the string representation of a ValueSource
func (s ValueSource) String() string {
	if s == SourceDefault {
		return "default"
	}
	return "command-line"
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list
// delimiters of repeatable arguments. Defaults to ','.
type ListDelimiterFunc func(matchOn rune) bool
