package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/philipp01105/logfacade/internal/options"
)

var (
	// ErrUnknownKind is returned by New for an unregistered filter kind
	ErrUnknownKind = errors.New("unknown filter kind")
	// ErrInvalidOption is returned for options a filter cannot accept
	ErrInvalidOption = errors.New("invalid filter option")
)

type constructor func(opts map[string]any) (Filter, error)

// kinds is the closed set of filter kinds understood by New
var kinds = map[string]constructor{
	"stringmatch": newStringMatchFromOptions,
	"levelmatch":  newLevelMatchFromOptions,
	"levelrange":  newLevelRangeFromOptions,
	"loggermatch": newLoggerMatchFromOptions,
	"denyall":     newDenyAllFromOptions,
	"jsonfield":   newJSONFieldFromOptions,
	"ratelimit":   newRateLimitFromOptions,
}

// Kinds returns the registered kind names, sorted
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// New builds a filter of the given kind from an option map. Kind names
// are case-insensitive.
func New(kind string, opts map[string]any) (Filter, error) {
	ctor, ok := kinds[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	f, err := ctor(opts)
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", kind, err)
	}
	return f, nil
}

func decode(opts map[string]any, out any) error {
	if err := options.Decode(opts, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return nil
}

func newStringMatchFromOptions(opts map[string]any) (Filter, error) {
	o := struct {
		StringToMatch string `option:"stringToMatch"`
		AcceptOnMatch bool   `option:"acceptOnMatch"`
	}{AcceptOnMatch: true}
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	return NewStringMatch(o.StringToMatch, o.AcceptOnMatch), nil
}

func newLevelMatchFromOptions(opts map[string]any) (Filter, error) {
	o := struct {
		LevelToMatch  string `option:"levelToMatch"`
		AcceptOnMatch bool   `option:"acceptOnMatch"`
	}{AcceptOnMatch: true}
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	level, set, err := options.ParseLevel(o.LevelToMatch)
	if err != nil {
		return nil, err
	}
	return &LevelMatch{Level: level, Set: set, AcceptOnMatch: o.AcceptOnMatch}, nil
}

func newLevelRangeFromOptions(opts map[string]any) (Filter, error) {
	var o struct {
		LevelMin      string `option:"levelMin"`
		LevelMax      string `option:"levelMax"`
		AcceptOnMatch bool   `option:"acceptOnMatch"`
	}
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	f := &LevelRange{AcceptOnMatch: o.AcceptOnMatch}
	var err error
	if f.Min, f.HasMin, err = options.ParseLevel(o.LevelMin); err != nil {
		return nil, err
	}
	if f.Max, f.HasMax, err = options.ParseLevel(o.LevelMax); err != nil {
		return nil, err
	}
	if f.HasMin && f.HasMax && f.Min.Weight() > f.Max.Weight() {
		return nil, fmt.Errorf("%w: levelMin %s is above levelMax %s", ErrInvalidOption, f.Min, f.Max)
	}
	return f, nil
}

func newLoggerMatchFromOptions(opts map[string]any) (Filter, error) {
	o := struct {
		LoggerName    string `option:"loggerName"`
		AcceptOnMatch bool   `option:"acceptOnMatch"`
	}{AcceptOnMatch: true}
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	return &LoggerMatch{LoggerName: o.LoggerName, AcceptOnMatch: o.AcceptOnMatch}, nil
}

func newDenyAllFromOptions(opts map[string]any) (Filter, error) {
	var o struct{}
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	return DenyAll{}, nil
}

func newJSONFieldFromOptions(opts map[string]any) (Filter, error) {
	o := struct {
		Path          string `option:"path"`
		Operator      string `option:"operator"`
		Value         string `option:"value"`
		AcceptOnMatch bool   `option:"acceptOnMatch"`
	}{AcceptOnMatch: true}
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	return NewJSONField(o.Path, Operator(strings.ToLower(o.Operator)), o.Value, o.AcceptOnMatch)
}

func newRateLimitFromOptions(opts map[string]any) (Filter, error) {
	var o struct {
		Rates    map[time.Duration]int `option:"rates"`
		Category string                `option:"category"`
	}
	if err := decode(opts, &o); err != nil {
		return nil, err
	}
	return NewRateLimit(o.Rates, RateCategory(strings.ToLower(o.Category)))
}
