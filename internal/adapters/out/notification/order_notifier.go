package notification

import (
	"context"
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
)

// customerLookup resolves the customer account an event belongs to.
type customerLookup interface {
	GetByID(ctx context.Context, id int64) (*account.User, error)
}

// OrderNotifier implements ports.EventPublisher by emailing the customer
// about confirmations and cancellations. Other event kinds are ignored.
type OrderNotifier struct {
	sender    Sender
	customers customerLookup
}

// NewOrderNotifier creates a notifier using the given sender and customer
// lookup.
func NewOrderNotifier(sender Sender, customers customerLookup) *OrderNotifier {
	return &OrderNotifier{sender: sender, customers: customers}
}

// Publish emails the customer once per notifiable event. The first delivery
// failure aborts the batch.
func (n *OrderNotifier) Publish(ctx context.Context, events []order.Event) error {
	for _, event := range events {
		subject, body, ok := composeMessage(event)
		if !ok {
			continue
		}

		customer, err := n.customers.GetByID(ctx, event.Order().CustomerID())
		if err != nil {
			return err
		}

		if err = n.sender.Send(ctx, customer.Email(), subject, body); err != nil {
			return err
		}
	}
	return nil
}

func composeMessage(event order.Event) (subject, body string, ok bool) {
	aggregate := event.Order()
	switch event.Kind() {
	case order.EventOrderConfirmed:
		subject = fmt.Sprintf("Order %s confirmed", aggregate.Code())
		body = fmt.Sprintf(
			"Your order %s has been confirmed and is being prepared. Total: %s.",
			aggregate.Code(), aggregate.Total())
		return subject, body, true
	case order.EventOrderCancelled:
		subject = fmt.Sprintf("Order %s cancelled", aggregate.Code())
		body = fmt.Sprintf("Your order %s has been cancelled.", aggregate.Code())
		return subject, body, true
	default:
		return "", "", false
	}
}
