package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/logfacade/core"
)

// String, Int and the other helpers build core.Field values for the
// structured context of an event. Renderers read them through
// core.Field.StringValue, bridge sinks through core.Field.Value.

func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool stores true as 1
func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time stores val as unix nanoseconds, rendered in UTC
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err is NamedErr with the key "error". The %ex converter renders the
// first error field of an event.
func Err(err error) core.Field {
	return NamedErr("error", err)
}

// NamedErr creates an error field. A nil error renders empty.
func NamedErr(key string, err error) core.Field {
	f := core.Field{Key: key, Type: core.ErrorType}
	if err != nil {
		f.Str = err.Error()
	}
	return f
}

// Stringer calls val.String once, when the field is created
func Stringer(key string, val fmt.Stringer) core.Field {
	if val == nil {
		return String(key, "<nil>")
	}
	return String(key, val.String())
}

// Any creates a field rendered with %v
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
