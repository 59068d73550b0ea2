package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState(t *testing.T) {
	s := NewState([]string{"--env", "prod", "file"})

	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, "", s.CurrentArg())
	next, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "--env", next)

	assert.True(t, s.Advance())
	assert.Equal(t, "--env", s.CurrentArg())
	assert.Equal(t, []string{"prod", "file"}, s.Rest())

	s.Skip()
	assert.Equal(t, "prod", s.CurrentArg())
	assert.True(t, s.Advance())
	assert.Equal(t, "file", s.CurrentArg())

	assert.False(t, s.Advance(), "should not advance past the last token")
	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Nil(t, s.Rest())

	arg, ok := s.ArgAt(0)
	assert.True(t, ok)
	assert.Equal(t, "--env", arg)
	_, ok = s.ArgAt(3)
	assert.False(t, ok)

	s.SetPos(0)
	assert.Equal(t, "--env", s.CurrentArg())
	assert.Equal(t, 3, s.Len())
	assert.Len(t, s.Args(), 3)
}

func TestLex(t *testing.T) {
	shorts := map[string]bool{"n": true, "1": true}
	isShort := func(name string) bool { return shorts[name] }

	tests := []struct {
		raw  string
		want Token
	}{
		{"--", Token{Kind: TokenTerminator, Raw: "--"}},
		{"--env", Token{Kind: TokenLong, Raw: "--env", Name: "env"}},
		{"--env=prod", Token{Kind: TokenLong, Raw: "--env=prod", Name: "env", Value: "prod", HasValue: true}},
		{"--env=", Token{Kind: TokenLong, Raw: "--env=", Name: "env", HasValue: true}},
		{"--tags=a=b", Token{Kind: TokenLong, Raw: "--tags=a=b", Name: "tags", Value: "a=b", HasValue: true}},
		{"-n", Token{Kind: TokenShort, Raw: "-n", Name: "n"}},
		{"-n=3", Token{Kind: TokenShort, Raw: "-n=3", Name: "n", Value: "3", HasValue: true}},
		{"-5", Token{Kind: TokenPositional, Raw: "-5"}},
		{"-2.5", Token{Kind: TokenPositional, Raw: "-2.5"}},
		{"-1", Token{Kind: TokenShort, Raw: "-1", Name: "1"}},
		{"-.5", Token{Kind: TokenPositional, Raw: "-.5"}},
		{"-inf", Token{Kind: TokenShort, Raw: "-inf", Name: "inf"}},
		{"-nan", Token{Kind: TokenShort, Raw: "-nan", Name: "nan"}},
		{"-Infinity", Token{Kind: TokenShort, Raw: "-Infinity", Name: "Infinity"}},
		{"-", Token{Kind: TokenPositional, Raw: "-"}},
		{"prod", Token{Kind: TokenPositional, Raw: "prod"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Lex(tt.raw, isShort)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind == TokenLong || tt.want.Kind == TokenShort, got.IsNamed())
		})
	}

	assert.Equal(t, TokenPositional, Lex("-7", nil).Kind, "should treat numbers as positional without a predicate")
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"0", "-12", "+3", "2.5", "-.5", "1e5", "-1e-3"} {
		assert.True(t, IsNumeric(s), s)
	}
	for _, s := range []string{"", "-", "inf", "-inf", "+Inf", "-nan", "NaN", "-infinity", "-e5", "abc"} {
		assert.False(t, IsNumeric(s), s)
	}
}
