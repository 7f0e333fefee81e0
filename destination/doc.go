// Package destination implements the per-output decision and rendering
// pipeline.
//
// A Destination owns a severity threshold, a filter chain and a layout,
// and forwards accepted events to a sink.Sink it does not implement
// itself. Handle runs these steps in order:
//
//  1. a closed destination drops the event
//  2. events below the threshold are dropped
//  3. the filter chain decides; DENY drops the event
//  4. the event is rendered and handed to the sink
//
// Steps 1 to 3 are pure and exposed on their own through Decide. Dropped
// events are normal outcomes, not errors: Handle only returns the error
// of a failed sink write, and the destination stays usable afterwards.
//
// A new destination is not ready. Activate compiles its pattern, resolves
// its layout and (re)opens the sink; configuration errors keep it closed.
// Close is idempotent and may race with Handle: dispatches that already
// passed the closed check finish before the sink is closed, and no new
// dispatch starts rendering afterwards.
package destination
