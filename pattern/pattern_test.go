package pattern

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/core"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 123000000, time.UTC)

func testEvent(t *testing.T, mods ...func(*core.EventData)) *core.Event {
	t.Helper()
	d := core.EventData{
		Time:       fixedTime,
		Level:      core.InfoLevel,
		LoggerName: "org.example.service.UserStore",
		Message:    "user created",
		Process:    4242,
		Caller: core.CallerInfo{
			File:      "/src/store/user.go",
			ShortFile: "store/user.go",
			Line:      87,
			Function:  "store.(*UserStore).Create",
			Defined:   true,
		},
		Fields: []core.Field{
			{Key: "user", Type: core.StringType, Str: "alice"},
			{Key: "attempt", Type: core.IntType, Int64: 2},
		},
	}
	for _, m := range mods {
		m(&d)
	}
	return core.NewEvent(d)
}

func render(t *testing.T, pattern string, e *core.Event) string {
	t.Helper()
	p, err := Compile(pattern)
	require.NoError(t, err)
	return p.Render(e)
}

func TestCompile_Converters(t *testing.T) {
	e := testEvent(t)

	tests := []struct {
		pattern string
		want    string
	}{
		{"%m", "user created"},
		{"%msg|%message", "user created|user created"},
		{"%p %le %level", "INFO INFO INFO"},
		{"%c", "org.example.service.UserStore"},
		{"%logger{0}", "UserStore"},
		{"%lo{}", "org.example.service.UserStore"},
		{"%d{ABSOLUTE}", "14:05:07.123"},
		{"%date{2006/01/02}", "2024/03/09"},
		{"%d", "2024-03-09T14:05:07+00:00"},
		{"%d{rfc3339}", "2024-03-09T14:05:07Z"},
		{"%F:%L", "/src/store/user.go:87"},
		{"%M", "store.(*UserStore).Create"},
		{"%l", "store.(*UserStore).Create(/src/store/user.go:87)"},
		{"%t", "4242"},
		{"%X{user}", "alice"},
		{"%X{missing}", ""},
		{"%mdc", "user=alice, attempt=2"},
		{"%f", "user=alice attempt=2"},
		{"%ex", ""},
		{"100%% done%n", "100% done\n"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.pattern, e))
		})
	}
}

func TestCompile_Modifiers(t *testing.T) {
	e := testEvent(t, func(d *core.EventData) { d.Message = "abcdef" })

	tests := []struct {
		pattern string
		want    string
	}{
		{"[%10m]", "[    abcdef]"},
		{"[%-10m]", "[abcdef    ]"},
		{"[%.3m]", "[def]"},
		{"[%.-3m]", "[abc]"},
		{"[%8.3m]", "[     def]"},
		{"[%-5p]", "[INFO ]"},
		{"[%2m]", "[abcdef]"},
		{"[%40m]", "[" + strings.Repeat(" ", 34) + "abcdef]"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.pattern, e))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		err     error
		offset  string
	}{
		{"abc %q", ErrUnknownConverter, "offset 4"},
		{"%mx", ErrUnknownConverter, "offset 0"},
		{"trailing %", ErrSyntax, "offset 9"},
		{"%-5 x", ErrSyntax, "offset 0"},
		{"%d{2006", ErrSyntax, "offset 2"},
		{"%.m", ErrSyntax, "offset 0"},
		{"%5.0m", ErrSyntax, "offset 0"},
		{"%c{abc}", ErrInvalidOption, "offset 0"},
		{"%c{-1}", ErrInvalidOption, "offset 0"},
		{"x %e", ErrInvalidOption, "offset 2"},
		{"%9999999999999m", ErrSyntax, "offset 0"},
		{"%.99999999999999999999m", ErrSyntax, "offset 0"},
		{"%4097m", ErrSyntax, "offset 0"},
		{"x %-.5000m", ErrSyntax, "offset 2"},
		{"%d{yyyy-MM-dd}", ErrInvalidOption, "offset 0"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
			assert.Contains(t, err.Error(), tt.offset)
		})
	}
}

func TestCompile_WidthLimit(t *testing.T) {
	p, err := Compile("%4096m|%.4096m")
	require.NoError(t, err)
	out := p.Render(testEvent(t))
	assert.Len(t, out, MaxWidth+len("|user created"))
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("%nope") })
	assert.NotPanics(t, func() { MustCompile("%m%n") })
}

func TestProgram_Idempotent(t *testing.T) {
	p := MustCompile("%d{ISO8601} %-5p %c{10} [%X] %m%n")
	e := testEvent(t)

	first := p.Render(e)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Render(e))
	}
	assert.Equal(t, "%d{ISO8601} %-5p %c{10} [%X] %m%n", p.Pattern())
}

func TestProgram_ConcurrentRender(t *testing.T) {
	names := []string{
		"org.example.service.UserStore",
		"org.example.http.Router",
		"com.acme.billing.Invoice",
		"Main",
	}
	events := make([]*core.Event, len(names))
	wants := make([]string, len(names))
	for i, name := range names {
		events[i] = testEvent(t, func(d *core.EventData) { d.LoggerName = name })
		wants[i] = "INFO  " + ShortenName(name, 5) + ": user created"
	}

	// nothing rendered yet, so goroutines race on the first insert of each name
	p := MustCompile("%-5p %c{5}: %m")
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			<-start
			for j := 0; j < 200; j++ {
				k := (j + offset) % len(names)
				assert.Equal(t, wants[k], p.Render(events[k]))
			}
		}(i)
	}
	close(start)
	wg.Wait()
}

func TestLocation_Undefined(t *testing.T) {
	e := testEvent(t, func(d *core.EventData) { d.Caller = core.CallerInfo{} })
	assert.Equal(t, "NA NA NA NA", render(t, "%F %L %M %l", e))
}

func TestException(t *testing.T) {
	e := testEvent(t, func(d *core.EventData) { d.Err = errors.New("disk full") })
	assert.Equal(t, "disk full", render(t, "%ex", e))

	e = testEvent(t, func(d *core.EventData) {
		d.Fields = append(d.Fields, core.Field{Key: "error", Type: core.ErrorType, Str: "timeout"})
	})
	assert.Equal(t, "timeout", render(t, "%throwable", e))
}

func TestRelative(t *testing.T) {
	e := testEvent(t, func(d *core.EventData) { d.Time = core.StartTime().Add(1500 * time.Millisecond) })
	assert.Equal(t, "1500", render(t, "%r", e))
}

func TestEnv(t *testing.T) {
	t.Setenv("LOGFACADE_TEST_HOST", "web-1")
	p := MustCompile("%e{LOGFACADE_TEST_HOST}")
	require.NoError(t, os.Setenv("LOGFACADE_TEST_HOST", "changed"))
	assert.Equal(t, "web-1", p.Render(testEvent(t)))
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "logger")
	assert.Contains(t, names, "X")
	assert.IsIncreasing(t, names)
}
