package core

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	processID = os.Getpid()
	startTime = time.Now()
)

// StartTime returns the time the process loaded this package. It is the
// origin of relative timestamps.
func StartTime() time.Time {
	return startTime
}

// CallerInfo contains information about the call site
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// EventData carries the inputs of NewEvent. Zero Time means now and zero
// Process means the current process id.
type EventData struct {
	Time       time.Time
	Level      Level
	LoggerName string
	Message    string
	Caller     CallerInfo
	Process    int
	Fields     []Field
	Err        error
}

// Event is an immutable snapshot of one log call. It is safe to share
// across destinations and goroutines without copying.
type Event struct {
	time       time.Time
	level      Level
	loggerName string
	message    string
	caller     CallerInfo
	process    int
	fields     []Field
	err        error
}

// NewEvent creates an Event from d. The fields slice is copied so later
// changes by the caller are not observed.
func NewEvent(d EventData) *Event {
	e := &Event{
		time:       d.Time,
		level:      d.Level,
		loggerName: d.LoggerName,
		message:    d.Message,
		caller:     d.Caller,
		process:    d.Process,
		err:        d.Err,
	}
	if e.time.IsZero() {
		e.time = time.Now()
	}
	if e.process == 0 {
		e.process = processID
	}
	if len(d.Fields) > 0 {
		e.fields = make([]Field, len(d.Fields))
		copy(e.fields, d.Fields)
	}
	return e
}

// Time returns the event timestamp
func (e *Event) Time() time.Time { return e.time }

// Level returns the event level
func (e *Event) Level() Level { return e.level }

// LoggerName returns the dot-delimited name of the emitting logger
func (e *Event) LoggerName() string { return e.loggerName }

// Message returns the rendered message
func (e *Event) Message() string { return e.message }

// Caller returns the call site, Defined is false when it was not captured
func (e *Event) Caller() CallerInfo { return e.caller }

// Process returns the id of the emitting process
func (e *Event) Process() int { return e.process }

// Err returns the error attached to the event, if any
func (e *Event) Err() error { return e.err }

// NumFields returns the number of structured context fields
func (e *Event) NumFields() int { return len(e.fields) }

// Field returns the i-th field in insertion order
func (e *Event) Field(i int) Field { return e.fields[i] }

// Lookup returns the value stored under key. When a key repeats, the last
// occurrence wins, matching how child loggers override parent fields.
func (e *Event) Lookup(key string) (Field, bool) {
	for i := len(e.fields) - 1; i >= 0; i-- {
		if e.fields[i].Key == key {
			return e.fields[i], true
		}
	}
	return Field{}, false
}

// RangeFields calls fn for each field in insertion order until fn
// returns false.
func (e *Event) RangeFields(fn func(Field) bool) {
	for _, f := range e.fields {
		if !fn(f) {
			return
		}
	}
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
