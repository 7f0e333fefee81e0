package destination

import (
	"go.uber.org/zap"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/filter"
	"github.com/philipp01105/logfacade/formatter"
)

// Option configures a Destination at construction
type Option func(*Destination)

// WithDiagnostics sets the logger used for the destination's own
// lifecycle and sink failure messages. The default discards them.
func WithDiagnostics(l *zap.Logger) Option {
	return func(d *Destination) {
		if l != nil {
			d.diag = l
		}
	}
}

// WithThreshold sets the minimum level. It is validated by Activate.
func WithThreshold(level core.Level) Option {
	return func(d *Destination) {
		d.threshold = level
		d.hasThreshold = true
	}
}

// WithFilters appends filters to the chain
func WithFilters(filters ...filter.Filter) Option {
	return func(d *Destination) {
		for _, f := range filters {
			d.chain.Add(f)
		}
	}
}

// WithFormatter sets the layout
func WithFormatter(f formatter.Formatter) Option {
	return func(d *Destination) {
		d.layout = f
		d.pattern = ""
	}
}

// WithPattern sets a conversion pattern, compiled by Activate
func WithPattern(p string) Option {
	return func(d *Destination) {
		d.pattern = p
		d.layout = nil
	}
}
