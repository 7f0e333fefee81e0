package pattern

import (
	"strconv"
	"strings"
	"sync"

	"github.com/philipp01105/logfacade/core"
)

// shortenName is replaceable in tests to count cache misses
var shortenName = ShortenName

// loggerConverter renders the logger name, optionally shortened. The
// shortened form of each name is computed once and memoized; the cache
// has no eviction.
type loggerConverter struct {
	length int
	cache  sync.Map // full name -> shortened name
}

func newLoggerConverter(option string, hasOption bool) (Converter, error) {
	option = strings.TrimSpace(option)
	if !hasOption || option == "" {
		return nameConverter{}, nil
	}
	n, err := strconv.Atoi(option)
	if err != nil || n < 0 {
		return nil, optionError("logger length must be a non-negative integer", option)
	}
	return &loggerConverter{length: n}, nil
}

func (c *loggerConverter) Convert(event *core.Event) string {
	name := event.LoggerName()
	if v, ok := c.cache.Load(name); ok {
		return v.(string)
	}
	v, _ := c.cache.LoadOrStore(name, shortenName(name, c.length))
	return v.(string)
}

// nameConverter renders the logger name unchanged
type nameConverter struct{}

func (nameConverter) Convert(event *core.Event) string {
	return event.LoggerName()
}
