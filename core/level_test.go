package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{AllLevel, "ALL"},
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{OffLevel, "OFF"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", TraceLevel},
		{"DEBUG", DebugLevel},
		{" Info ", InfoLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"all", AllLevel},
		{"off", OffLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	for _, in := range []string{"", "verbose", "PANIC", "3"} {
		_, err := ParseLevel(in)
		assert.True(t, errors.Is(err, ErrUnknownLevel), "ParseLevel(%q) error = %v", in, err)
	}
}

func TestMustParseLevel_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseLevel("nope") })
	assert.Equal(t, ErrorLevel, MustParseLevel("error"))
}

func TestLevel_IsAtLeastAsSevereAs(t *testing.T) {
	levels := []Level{AllLevel, TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel, OffLevel}
	for _, a := range levels {
		for _, b := range levels {
			assert.Equal(t, a.Weight() >= b.Weight(), a.IsAtLeastAsSevereAs(b), "%s vs %s", a, b)
		}
		assert.True(t, a.IsAtLeastAsSevereAs(a), "reflexive for %s", a)
		assert.True(t, a.Valid())
	}
	assert.False(t, Level(99).Valid())
}
