// Package util holds small helpers shared by the parser and the renderer.
package util

import (
	"strings"

	"github.com/napalu/chaincli/types"
)

// Reverse reverses the slice in place
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// SplitList splits value on the runes matched by delimiter, trims surrounding whitespace from every item and drops
// empty items. A nil delimiter returns value as a single trimmed item.
func SplitList(value string, delimiter types.ListDelimiterFunc) []string {
	if delimiter == nil {
		if v := strings.TrimSpace(value); v != "" {
			return []string{v}
		}
		return nil
	}

	fields := strings.FieldsFunc(value, delimiter)
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			items = append(items, f)
		}
	}
	return items
}
