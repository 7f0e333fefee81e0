package filter

import (
	"github.com/philipp01105/logfacade/core"
)

// Chain is an ordered list of filters evaluated with three-way
// short-circuiting. The zero value is an empty chain, which accepts
// everything.
type Chain struct {
	filters []Filter
}

// NewChain creates a chain from the given filters, nil entries are skipped
func NewChain(filters ...Filter) *Chain {
	c := &Chain{}
	for _, f := range filters {
		c.Add(f)
	}
	return c
}

// Add appends f at the tail of the chain
func (c *Chain) Add(f Filter) {
	if f == nil {
		return
	}
	c.filters = append(c.filters, f)
}

// Clear removes every filter
func (c *Chain) Clear() {
	c.filters = nil
}

// Len returns the number of filters in the chain
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.filters)
}

// Filters returns a copy of the chain's filters in evaluation order
func (c *Chain) Filters() []Filter {
	if c == nil || len(c.filters) == 0 {
		return nil
	}
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// Decide evaluates the chain. The first DENY or ACCEPT wins; when every
// filter is NEUTRAL the result is ACCEPT. The result is never NEUTRAL.
// A nil chain accepts everything.
func (c *Chain) Decide(event *core.Event) Decision {
	if c == nil {
		return Accept
	}
	for _, f := range c.filters {
		switch f.Decide(event) {
		case Deny:
			return Deny
		case Accept:
			return Accept
		}
	}
	return Accept
}
