package parse

// State represents the read position of the parser over the tokens remaining after command resolution
type State interface {
	Pos() int                     // Get the current position
	SetPos(pos int)               // Set the current position
	Skip()                        // Skip the current token
	Args() []string               // Get the entire token list
	CurrentArg() string           // Get the current token
	ArgAt(pos int) (string, bool) // Get the token at a specific position
	Peek() (string, bool)         // Peek at the next token
	Advance() bool                // Advance to the next token
	Rest() []string               // Tokens after the current position
	Len() int                     // Gets the length of the token list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first token
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the token list
func (s *DefaultState) Pos() int {
	return s.pos
}

// SetPos sets the current position in the token list
func (s *DefaultState) SetPos(pos int) {
	s.pos = pos
}

// Skip moves past the current token without bounds checking; the next Advance reports exhaustion
func (s *DefaultState) Skip() {
	s.pos++
}

// Args returns the entire token list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current token or an empty string when the position is out of range
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next token, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Peek returns the next token without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	return s.ArgAt(s.pos + 1)
}

// ArgAt returns the token at a specific position
func (s *DefaultState) ArgAt(pos int) (string, bool) {
	if pos < 0 || pos >= len(s.args) {
		return "", false
	}

	return s.args[pos], true
}

// Rest returns the tokens following the current position
func (s *DefaultState) Rest() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}
	return s.args[s.pos+1:]
}

// Len returns the length of the token list
func (s *DefaultState) Len() int {
	return len(s.args)
}
