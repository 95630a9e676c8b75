package normalization

import (
	"strings"
)

// ParseInputString lowercases and trims free-form identity input (emails,
// lookup keys). Not for display fields.
func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString trims display fields without case folding.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}
