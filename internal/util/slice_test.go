package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		arr  []string
		want []string
	}{
		{"odd length", []string{"a", "b", "c"}, []string{"c", "b", "a"}},
		{"even length", []string{"a", "b"}, []string{"b", "a"}},
		{"single element", []string{"a"}, []string{"a"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr := append([]string{}, tt.arr...)
			Reverse(arr)
			assert.Equal(t, tt.want, arr)
		})
	}
}

func TestSplitList(t *testing.T) {
	comma := func(r rune) bool { return r == ',' }
	commaOrPipe := func(r rune) bool { return r == ',' || r == '|' }

	tests := []struct {
		name      string
		value     string
		delimiter func(rune) bool
		want      []string
	}{
		{"single value", "a", comma, []string{"a"}},
		{"trims items", " a , b ,c ", comma, []string{"a", "b", "c"}},
		{"drops empty items", "a,,b,", comma, []string{"a", "b"}},
		{"custom delimiter", "a|b,c", commaOrPipe, []string{"a", "b", "c"}},
		{"only delimiters", ",,", comma, []string{}},
		{"no delimiter", " a,b ", nil, []string{"a,b"}},
		{"no delimiter blank", "  ", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.value, tt.delimiter))
		})
	}
}
