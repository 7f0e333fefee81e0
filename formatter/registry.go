package formatter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/philipp01105/logfacade/internal/options"
)

var (
	// ErrUnknownLayout is returned by New for an unregistered layout name
	ErrUnknownLayout = errors.New("unknown layout")
	// ErrInvalidOption is returned for options a layout cannot accept
	ErrInvalidOption = errors.New("invalid layout option")
)

var layouts = map[string]func(opts map[string]any) (Formatter, error){
	"pattern": func(opts map[string]any) (Formatter, error) {
		o := struct {
			Pattern string `option:"pattern"`
		}{}
		if err := decode(opts, &o); err != nil {
			return nil, err
		}
		return NewPatternFormatter(o.Pattern)
	},
	"simple": func(opts map[string]any) (Formatter, error) {
		if err := decode(opts, &struct{}{}); err != nil {
			return nil, err
		}
		return SimpleFormatter{}, nil
	},
	"text": func(opts map[string]any) (Formatter, error) {
		var cfg Config
		if err := decode(opts, &cfg); err != nil {
			return nil, err
		}
		return NewTextFormatter(cfg), nil
	},
	"json": func(opts map[string]any) (Formatter, error) {
		var cfg Config
		if err := decode(opts, &cfg); err != nil {
			return nil, err
		}
		return NewJSONFormatter(cfg), nil
	},
}

// Layouts returns the registered layout names, sorted
func Layouts() []string {
	names := make([]string, 0, len(layouts))
	for k := range layouts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// New builds the named layout from an option map. Names are
// case-insensitive.
func New(layout string, opts map[string]any) (Formatter, error) {
	ctor, ok := layouts[strings.ToLower(layout)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}
	f, err := ctor(opts)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", layout, err)
	}
	return f, nil
}

func decode(opts map[string]any, out any) error {
	if err := options.Decode(opts, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return nil
}
