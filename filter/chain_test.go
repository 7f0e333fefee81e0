package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfacade/core"
)

// recorder returns a fixed decision and counts evaluations
type recorder struct {
	decision Decision
	calls    int
}

func (r *recorder) Decide(*core.Event) Decision {
	r.calls++
	return r.decision
}

func event(level core.Level, msg string) *core.Event {
	return core.NewEvent(core.EventData{Level: level, LoggerName: "app.service", Message: msg})
}

func TestChain_EmptyAccepts(t *testing.T) {
	var nilChain *Chain
	assert.Equal(t, Accept, nilChain.Decide(event(core.InfoLevel, "x")))
	assert.Equal(t, Accept, NewChain().Decide(event(core.InfoLevel, "x")))
	assert.Equal(t, Accept, (&Chain{}).Decide(event(core.InfoLevel, "x")))
}

func TestChain_AllNeutralAccepts(t *testing.T) {
	for n := 1; n <= 5; n++ {
		filters := make([]*recorder, n)
		c := NewChain()
		for i := range filters {
			filters[i] = &recorder{decision: Neutral}
			c.Add(filters[i])
		}
		assert.Equal(t, Accept, c.Decide(event(core.InfoLevel, "x")))
		for _, f := range filters {
			assert.Equal(t, 1, f.calls)
		}
	}
}

func TestChain_ShortCircuit(t *testing.T) {
	for _, stop := range []Decision{Deny, Accept} {
		t.Run(stop.String(), func(t *testing.T) {
			for pos := 0; pos < 4; pos++ {
				c := NewChain()
				var filters []*recorder
				for i := 0; i < 4; i++ {
					d := Neutral
					if i == pos {
						d = stop
					}
					r := &recorder{decision: d}
					filters = append(filters, r)
					c.Add(r)
				}

				assert.Equal(t, stop, c.Decide(event(core.InfoLevel, "x")))
				for i, f := range filters {
					if i <= pos {
						assert.Equal(t, 1, f.calls, "filter %d before stop", i)
					} else {
						assert.Zero(t, f.calls, "filter %d after stop", i)
					}
				}
			}
		})
	}
}

func TestChain_AddClear(t *testing.T) {
	c := NewChain(nil, DenyAll{})
	require.Equal(t, 1, c.Len())

	c.Add(nil)
	c.Add(&recorder{decision: Accept})
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, Deny, c.Decide(event(core.InfoLevel, "x")))

	fs := c.Filters()
	require.Len(t, fs, 2)
	assert.Equal(t, DenyAll{}, fs[0])

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Nil(t, c.Filters())
	assert.Equal(t, Accept, c.Decide(event(core.InfoLevel, "x")))
}

func TestChain_DenyByDefaultTail(t *testing.T) {
	c := NewChain(NewStringMatch("audit", true), DenyAll{})

	assert.Equal(t, Accept, c.Decide(event(core.InfoLevel, "audit: login")))
	assert.Equal(t, Deny, c.Decide(event(core.InfoLevel, "heartbeat")))
}

func TestFunc(t *testing.T) {
	f := Func(func(e *core.Event) Decision {
		if e.Level() == core.ErrorLevel {
			return Accept
		}
		return Neutral
	})
	assert.Equal(t, Accept, f.Decide(event(core.ErrorLevel, "")))
	assert.Equal(t, Neutral, f.Decide(event(core.InfoLevel, "")))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "DENY", Deny.String())
	assert.Equal(t, "NEUTRAL", Neutral.String())
	assert.Equal(t, "ACCEPT", Accept.String())
	assert.Equal(t, "UNKNOWN", Decision(9).String())
}

func BenchmarkChainDecide(b *testing.B) {
	c := NewChain(
		NewStringMatch("nope", false),
		&LevelRange{Min: core.DebugLevel, HasMin: true},
		&LoggerMatch{LoggerName: "other"},
	)
	e := event(core.InfoLevel, "a perfectly ordinary message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Decide(e)
	}
}
