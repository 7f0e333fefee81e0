package filter

import (
	"fmt"
	"time"

	catrate "github.com/joeycumines/go-catrate"

	"github.com/philipp01105/logfacade/core"
)

// RateCategory selects what a RateLimit filter counts events by
type RateCategory string

const (
	ByLogger  RateCategory = "logger"
	ByMessage RateCategory = "message"
	ByLevel   RateCategory = "level"
)

// RateLimit denies events once their category exceeds any of the
// configured sliding-window rates. Events within the limits are NEUTRAL.
type RateLimit struct {
	limiter  *catrate.Limiter
	category RateCategory
}

// NewRateLimit creates a RateLimit filter. Rates map a window to the
// maximum number of events allowed within it.
func NewRateLimit(rates map[time.Duration]int, category RateCategory) (f *RateLimit, err error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: at least one rate is required", ErrInvalidOption)
	}
	switch category {
	case "":
		category = ByLogger
	case ByLogger, ByMessage, ByLevel:
	default:
		return nil, fmt.Errorf("%w: unknown rate category %q", ErrInvalidOption, category)
	}
	// catrate panics on invalid rates
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, fmt.Errorf("%w: %v", ErrInvalidOption, r)
		}
	}()
	return &RateLimit{
		limiter:  catrate.NewLimiter(rates),
		category: category,
	}, nil
}

// Decide implements Filter
func (f *RateLimit) Decide(event *core.Event) Decision {
	if _, ok := f.limiter.Allow(f.key(event)); !ok {
		return Deny
	}
	return Neutral
}

func (f *RateLimit) key(event *core.Event) any {
	switch f.category {
	case ByMessage:
		return event.Message()
	case ByLevel:
		return event.Level()
	default:
		return event.LoggerName()
	}
}
