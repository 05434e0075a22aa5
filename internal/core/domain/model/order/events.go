package order

import "time"

// EventKind identifies the kind of a domain event raised by an order.
type EventKind string

const (
	// EventOrderConfirmed is raised when an order transitions to CONFIRMED.
	EventOrderConfirmed EventKind = "OrderConfirmed"

	// EventOrderCancelled is raised when an order transitions to CANCELLED.
	EventOrderCancelled EventKind = "OrderCancelled"
)

// Event is a record of a significant order state change. Events are queued on
// the aggregate during a transition and drained by the caller after the
// surrounding transaction commits; the aggregate never delivers them itself.
//
// Delivery transitions intentionally raise no event: downstream consumers in
// this system only react to confirmation and cancellation.
type Event interface {
	// Kind identifies what happened.
	Kind() EventKind

	// Order returns the aggregate the event refers to.
	Order() *Order

	// OccurredAt returns when the transition happened.
	OccurredAt() time.Time
}

type orderEvent struct {
	kind       EventKind
	order      *Order
	occurredAt time.Time
}

func newOrderEvent(kind EventKind, o *Order, at time.Time) Event {
	return orderEvent{kind: kind, order: o, occurredAt: at}
}

func (e orderEvent) Kind() EventKind       { return e.kind }
func (e orderEvent) Order() *Order         { return e.order }
func (e orderEvent) OccurredAt() time.Time { return e.occurredAt }
