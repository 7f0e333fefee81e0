package destination

// Outcome is the result of the decision steps of a dispatch
type Outcome int8

const (
	// Closed means the destination is not ready
	Closed Outcome = iota
	// BelowThreshold means the event level is under the threshold
	BelowThreshold
	// Denied means the filter chain denied the event
	Denied
	// Accepted means the event is rendered and written
	Accepted
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Closed:
		return "closed"
	case BelowThreshold:
		return "below-threshold"
	case Denied:
		return "denied"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}
