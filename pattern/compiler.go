package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is returned for malformed patterns
	ErrSyntax = errors.New("pattern syntax error")
	// ErrUnknownConverter is returned for converter names that are not registered
	ErrUnknownConverter = errors.New("unknown converter")
	// ErrInvalidOption is returned when a converter rejects its option
	ErrInvalidOption = errors.New("invalid converter option")
)

// MaxWidth bounds the minimum and maximum width modifiers
const MaxWidth = 4096

// Compile parses pattern into a Program. Compilation is the only place
// the pattern string is scanned.
func Compile(pattern string) (*Program, error) {
	p := &Program{pattern: pattern}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			p.segments = append(p.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(pattern) {
		c := pattern[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '%' {
			lit.WriteByte('%')
			i += 2
			continue
		}

		start := i
		i++
		fi, next, err := parseModifiers(pattern, i)
		if err != nil {
			return nil, err
		}
		i = next

		nameStart := i
		for i < len(pattern) && isLetter(pattern[i]) {
			i++
		}
		if i == nameStart {
			return nil, fmt.Errorf("%w at offset %d: missing converter name", ErrSyntax, start)
		}
		name := pattern[nameStart:i]

		var option string
		var hasOption bool
		if i < len(pattern) && pattern[i] == '{' {
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w at offset %d: unterminated option for %%%s", ErrSyntax, i, name)
			}
			option = pattern[i+1 : i+1+end]
			hasOption = true
			i += end + 2
		}

		factory, ok := converters[name]
		if !ok {
			return nil, fmt.Errorf("%w at offset %d: %%%s", ErrUnknownConverter, start, name)
		}
		conv, err := factory(option, hasOption)
		if err != nil {
			return nil, fmt.Errorf("%%%s at offset %d: %w", name, start, err)
		}

		flush()
		p.segments = append(p.segments, segment{conv: conv, info: fi})
	}
	flush()
	return p, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(pattern string) *Program {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// parseModifiers reads [-][min][.[-]max] starting at i
func parseModifiers(pattern string, i int) (FormattingInfo, int, error) {
	var fi FormattingInfo
	start := i
	if i < len(pattern) && pattern[i] == '-' {
		fi.PadRight = true
		i++
	}
	var ok bool
	if fi.Min, i, ok = readWidth(pattern, i); !ok {
		return fi, i, fmt.Errorf("%w at offset %d: minimum width above %d", ErrSyntax, start-1, MaxWidth)
	}
	if i < len(pattern) && pattern[i] == '.' {
		i++
		if i < len(pattern) && pattern[i] == '-' {
			fi.TrimRight = true
			i++
		}
		digitsStart := i
		fi.Max, i, ok = readWidth(pattern, i)
		if !ok || i == digitsStart || fi.Max == 0 {
			return fi, i, fmt.Errorf("%w at offset %d: invalid maximum width", ErrSyntax, start-1)
		}
	}
	return fi, i, nil
}

// readWidth reads a run of digits at i. ok is false when the number does
// not fit in MaxWidth.
func readWidth(s string, i int) (n, next int, ok bool) {
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, i, true
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil || n > MaxWidth {
		return 0, i, false
	}
	return n, i, true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
