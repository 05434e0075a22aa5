package order

import (
	"errors"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering domain. It owns its line items
// and the lifecycle state machine over {CREATED, CONFIRMED, DELIVERED,
// CANCELLED}.
//
// Order maintains these invariants:
//   - id is assigned by the store on first insert; code is a UUID assigned
//     once at first persistence and never regenerated
//   - total = subtotal + shipping fee, valid only after ComputeTotal has run
//     following any mutation of items or shipping fee
//   - each lifecycle timestamp is set exactly once, when the corresponding
//     transition occurs, and is never cleared
//   - status transitions follow the explicit transition table in status.go
//
// Domain events raised by transitions are buffered on the aggregate as an
// explicit pending slice and drained with ReleaseEvents after commit.
type Order struct {
	id              int64
	code            string
	customerID      int64
	restaurantID    int64
	paymentMethodID int64
	deliveryAddress kernel.Address
	items           []*Item

	subtotal    kernel.Money
	shippingFee kernel.Money
	total       kernel.Money

	status      Status
	createdAt   time.Time
	confirmedAt *time.Time
	cancelledAt *time.Time
	deliveredAt *time.Time

	pendingEvents []Event
	isConstructed bool
}

// NewOrder creates an order in CREATED status for the given customer,
// restaurant, and payment method, owning the given line items.
// At least one item is required. The shipping fee starts unassigned; callers
// must invoke AssignShippingFee before ComputeTotal.
func NewOrder(
	customerID, restaurantID, paymentMethodID int64,
	deliveryAddress kernel.Address,
	items []*Item,
) (*Order, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsRequiredError("customerID")
	}
	if restaurantID <= 0 {
		return nil, errs.NewValueIsRequiredError("restaurantID")
	}
	if paymentMethodID <= 0 {
		return nil, errs.NewValueIsRequiredError("paymentMethodID")
	}
	if err := deliveryAddress.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	return &Order{
		customerID:      customerID,
		restaurantID:    restaurantID,
		paymentMethodID: paymentMethodID,
		deliveryAddress: deliveryAddress,
		items:           items,
		status:          StatusCreated,
		createdAt:       time.Now(),
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
// The status must be valid; monetary fields and timestamps are taken as
// stored, with no recomputation.
func RestoreOrder(
	id int64,
	code string,
	customerID, restaurantID, paymentMethodID int64,
	deliveryAddress kernel.Address,
	items []*Item,
	subtotal, shippingFee, total kernel.Money,
	status Status,
	createdAt time.Time,
	confirmedAt, cancelledAt, deliveredAt *time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		code:            code,
		customerID:      customerID,
		restaurantID:    restaurantID,
		paymentMethodID: paymentMethodID,
		deliveryAddress: deliveryAddress,
		items:           items,
		subtotal:        subtotal,
		shippingFee:     shippingFee,
		total:           total,
		status:          status,
		createdAt:       createdAt,
		confirmedAt:     confirmedAt,
		cancelledAt:     cancelledAt,
		deliveredAt:     deliveredAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Confirm transitions the order from CREATED to CONFIRMED, records the
// confirmation timestamp, and queues an OrderConfirmed event.
// Fails with a business error naming the order code, the attempted target,
// and the current status when the transition table disallows the change.
func (o *Order) Confirm() error {
	if err := o.setStatus(StatusConfirmed); err != nil {
		return err
	}

	now := time.Now()
	o.confirmedAt = &now
	o.recordEvent(newOrderEvent(EventOrderConfirmed, o, now))
	return nil
}

// Cancel transitions the order from CREATED to CANCELLED, records the
// cancellation timestamp, and queues an OrderCancelled event.
func (o *Order) Cancel() error {
	if err := o.setStatus(StatusCancelled); err != nil {
		return err
	}

	now := time.Now()
	o.cancelledAt = &now
	o.recordEvent(newOrderEvent(EventOrderCancelled, o, now))
	return nil
}

// Deliver transitions the order from CONFIRMED to DELIVERED and records the
// delivery timestamp. No event is raised: notification consumers only react
// to confirmation and cancellation.
func (o *Order) Deliver() error {
	if err := o.setStatus(StatusDelivered); err != nil {
		return err
	}

	now := time.Now()
	o.deliveredAt = &now
	return nil
}

// setStatus consults the transition table before mutating. The two failure
// messages are deliberately distinct so that "already in target state" and
// "illegal transition between distinct states" can be told apart.
func (o *Order) setStatus(target Status) error {
	switch o.status.Outcome(target) {
	case TransitionAllowed:
		o.status = target
		return nil
	case TransitionAlreadyInTarget:
		return errs.NewBusinessError(
			"status of order %s cannot change to %s because the order is already %s",
			o.code, target, o.status)
	default:
		return errs.NewBusinessError(
			"order %s cannot transition from status %s to status %s",
			o.code, o.status, target)
	}
}

// ComputeTotal recomputes each line item's total, sums them into the
// subtotal (zero for no items), and sets total = subtotal + shipping fee.
// Callers must assign the shipping fee first; computing before that yields
// a total that treats the fee as zero.
func (o *Order) ComputeTotal() {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		item.computeTotal()
		subtotal = subtotal.Add(item.Total())
	}

	o.subtotal = subtotal
	o.total = subtotal.Add(o.shippingFee)
}

// AssignShippingFee copies the restaurant's current shipping fee onto the
// order. No validation; the fee is a Money and therefore non-negative.
func (o *Order) AssignShippingFee(fee kernel.Money) {
	o.shippingFee = fee
}

// AssignCode assigns a freshly generated unique code on first persistence.
// Subsequent calls are no-ops: a code, once assigned, is never regenerated.
func (o *Order) AssignCode() {
	if o.code == "" {
		o.code = uuid.NewString()
	}
}

// AssignID records the store-assigned numeric id after the first insert.
// Subsequent calls are no-ops.
func (o *Order) AssignID(id int64) {
	if o.id == 0 {
		o.id = id
	}
}

// ReleaseEvents drains and returns the pending domain events. Callers must
// only invoke this after the transaction that persisted the state change has
// committed, so observers never react to a state that could roll back.
func (o *Order) ReleaseEvents() []Event {
	events := o.pendingEvents
	o.pendingEvents = nil
	return events
}

func (o *Order) recordEvent(e Event) {
	o.pendingEvents = append(o.pendingEvents, e)
}

// ID returns the store-assigned numeric id, zero before first persistence.
func (o *Order) ID() int64 { return o.id }

// Code returns the globally unique order code, empty before first persistence.
func (o *Order) Code() string { return o.code }

// CustomerID returns the ordering customer's id.
func (o *Order) CustomerID() int64 { return o.customerID }

// RestaurantID returns the restaurant's id.
func (o *Order) RestaurantID() int64 { return o.restaurantID }

// PaymentMethodID returns the chosen payment method's id.
func (o *Order) PaymentMethodID() int64 { return o.paymentMethodID }

// DeliveryAddress returns the embedded delivery address.
func (o *Order) DeliveryAddress() kernel.Address { return o.deliveryAddress }

// Items returns the owned line items in order.
func (o *Order) Items() []*Item { return o.items }

// Subtotal returns the sum of line totals computed by ComputeTotal.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// ShippingFee returns the shipping fee assigned from the restaurant.
func (o *Order) ShippingFee() kernel.Money { return o.shippingFee }

// Total returns subtotal + shipping fee as computed by ComputeTotal.
func (o *Order) Total() kernel.Money { return o.total }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ConfirmedAt returns the confirmation timestamp, nil until Confirm succeeds.
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }

// CancelledAt returns the cancellation timestamp, nil until Cancel succeeds.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// DeliveredAt returns the delivery timestamp, nil until Deliver succeeds.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
