package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/philipp01105/logfacade/core"
)

// Operator defines the comparison used by JSONField
type Operator string

const (
	OpEquals   Operator = "equals"
	OpContains Operator = "contains"
	OpRegex    Operator = "regex"
)

// JSONField treats the event message as a JSON document and compares the
// value found at Path. Messages that are not JSON and paths that do not
// exist are NEUTRAL, so the filter fails open.
type JSONField struct {
	path          string
	operator      Operator
	value         string
	regex         *regexp.Regexp
	acceptOnMatch bool
}

// NewJSONField creates a JSONField filter. Path segments are separated by
// "/" so that keys containing dots can be addressed, e.g.
// "resource/service.name".
func NewJSONField(path string, op Operator, value string, acceptOnMatch bool) (*JSONField, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path must be set", ErrInvalidOption)
	}
	if op == "" {
		op = OpEquals
	}
	f := &JSONField{
		path:          toGJSONPath(path),
		operator:      op,
		value:         value,
		acceptOnMatch: acceptOnMatch,
	}
	switch op {
	case OpEquals, OpContains:
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid regex %q: %v", ErrInvalidOption, value, err)
		}
		f.regex = re
	default:
		return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidOption, op)
	}
	return f, nil
}

// Decide implements Filter
func (f *JSONField) Decide(event *core.Event) Decision {
	msg := event.Message()
	if msg == "" || !gjson.Valid(msg) {
		return Neutral
	}
	res := gjson.Get(msg, f.path)
	if !res.Exists() {
		return Neutral
	}
	if f.match(res.String()) {
		return onMatch(f.acceptOnMatch)
	}
	return Neutral
}

func (f *JSONField) match(s string) bool {
	switch f.operator {
	case OpContains:
		return strings.Contains(s, f.value)
	case OpRegex:
		return f.regex.MatchString(s)
	default:
		return s == f.value
	}
}

// toGJSONPath converts "a/b.c" to the gjson path "a.b\.c".
func toGJSONPath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(part, ".", `\.`)
	}
	return strings.Join(parts, ".")
}
