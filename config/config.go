// Package config builds destinations from declarative settings.
//
// A DestinationConfig names a threshold, an ordered list of filters and
// either a conversion pattern or a named layout. Build validates all of
// it before any event flows and reports every problem at once; a
// destination is only returned when its configuration is complete.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/philipp01105/logfacade/destination"
	"github.com/philipp01105/logfacade/filter"
	"github.com/philipp01105/logfacade/formatter"
	"github.com/philipp01105/logfacade/internal/options"
	"github.com/philipp01105/logfacade/sink"
)

// ErrConflictingLayout is returned when both a pattern and a layout are set
var ErrConflictingLayout = errors.New("pattern and layout are mutually exclusive")

// FilterSpec describes one filter of a chain
type FilterSpec struct {
	Kind    string         `option:"kind"`
	Options map[string]any `option:"options"`
}

// LayoutSpec selects a named layout and its options
type LayoutSpec struct {
	Name    string         `option:"name"`
	Options map[string]any `option:"options"`
}

// DestinationConfig is the configuration surface of one destination
type DestinationConfig struct {
	Name string `option:"name"`
	// Threshold is a level name, empty for no threshold
	Threshold string       `option:"threshold"`
	Filters   []FilterSpec `option:"filters"`
	// Pattern is a conversion pattern; it excludes Layout
	Pattern string      `option:"pattern"`
	Layout  *LayoutSpec `option:"layout"`
}

// Decode fills a DestinationConfig from a loosely typed map, as produced
// by YAML, JSON or flag parsers. Unknown keys are an error.
func Decode(in map[string]any) (DestinationConfig, error) {
	var cfg DestinationConfig
	if err := options.Decode(in, &cfg); err != nil {
		return DestinationConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Build creates and activates a destination writing to s. Every
// configuration error is collected and returned together; errors.Is works
// against each of them.
func Build(cfg DestinationConfig, s sink.Sink, opts ...destination.Option) (*destination.Destination, error) {
	var errs error

	level, hasThreshold, err := options.ParseLevel(cfg.Threshold)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("threshold: %w", err))
	}

	filters := make([]filter.Filter, 0, len(cfg.Filters))
	for i, spec := range cfg.Filters {
		f, err := filter.New(spec.Kind, spec.Options)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("filters[%d]: %w", i, err))
			continue
		}
		filters = append(filters, f)
	}

	layout, err := buildLayout(cfg)
	if err != nil {
		errs = multierr.Append(errs, err)
	}

	if errs != nil {
		return nil, fmt.Errorf("destination %s: %w", cfg.Name, errs)
	}

	all := make([]destination.Option, 0, len(opts)+3)
	all = append(all, opts...)
	all = append(all, destination.WithFilters(filters...))
	if hasThreshold {
		all = append(all, destination.WithThreshold(level))
	}
	if layout != nil {
		all = append(all, destination.WithFormatter(layout))
	}

	d := destination.New(cfg.Name, s, all...)
	if err := d.Activate(); err != nil {
		return nil, err
	}
	return d, nil
}

func buildLayout(cfg DestinationConfig) (formatter.Formatter, error) {
	switch {
	case cfg.Pattern != "" && cfg.Layout != nil:
		return nil, ErrConflictingLayout
	case cfg.Pattern != "":
		f, err := formatter.NewPatternFormatter(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		return f, nil
	case cfg.Layout != nil:
		f, err := formatter.New(cfg.Layout.Name, cfg.Layout.Options)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		return f, nil
	default:
		return nil, nil
	}
}
