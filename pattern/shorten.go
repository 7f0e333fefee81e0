package pattern

import (
	"strings"
	"unicode/utf8"
)

// ShortenName abbreviates a dot separated logger name to at most length
// characters where possible. Leading segments are reduced to their first
// character from the left until the name fits. The last segment is never
// shortened, so the result may still exceed length. A length of 0 keeps
// only the last segment. Lengths count runes, like the width modifiers.
func ShortenName(name string, length int) string {
	if length < 0 {
		return name
	}
	current := utf8.RuneCountInString(name)
	if current <= length {
		return name
	}
	if length == 0 {
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			return name[i+1:]
		}
		return name
	}

	parts := strings.Split(name, ".")
	for i := 0; i < len(parts)-1 && current > length; i++ {
		_, size := utf8.DecodeRuneInString(parts[i])
		if size < len(parts[i]) {
			current -= utf8.RuneCountInString(parts[i]) - 1
			parts[i] = parts[i][:size]
		}
	}
	return strings.Join(parts, ".")
}
