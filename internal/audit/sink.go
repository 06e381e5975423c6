package audit

// Sink is what producers of audit events depend on; the Dispatcher is
// the production implementation.
type Sink interface {
	Dispatch(ev Event)
}

var _ Sink = (*Dispatcher)(nil)
