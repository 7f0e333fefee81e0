package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/formatter"
)

func ExampleNewPatternFormatter() {
	f, err := formatter.NewPatternFormatter("%d{ABSOLUTE} [%-5p] %c{0}: %m%n")
	if err != nil {
		panic(err)
	}

	e := core.NewEvent(core.EventData{
		Time:       time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:      core.WarnLevel,
		LoggerName: "app.store.Cache",
		Message:    "cache miss",
	})

	fmt.Print(f.Format(e))
	// Output:
	// 12:00:00.000 [WARN ] Cache: cache miss
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	e := core.NewEvent(core.EventData{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "request handled",
		Fields: []core.Field{
			{Key: "status", Int64: 200, Type: core.Int64Type},
		},
	})

	fmt.Print(f.Format(e))
	// Output:
	// {"time":"2026-01-15T12:00:00Z","level":"INFO","message":"request handled","status":200}
}
