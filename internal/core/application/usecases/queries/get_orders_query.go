// Package queries contains read-only operations answered straight from the
// database, bypassing the domain model. Responses are plain structs shaped
// for the transport layer.
package queries

import (
	"errors"
	"time"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetOrdersQuery retrieves a page of order summaries, newest first.
type GetOrdersQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paginated order listing query. A non-positive
// limit falls back to the default page size; the limit is capped at the
// maximum page size. A negative offset is invalid.
func NewGetOrdersQuery(limit, offset int) (GetOrdersQuery, error) {
	if offset < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return GetOrdersQuery{limit: limit, offset: offset, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int { return q.limit }

// Offset returns how many orders to skip.
func (q GetOrdersQuery) Offset() int { return q.offset }

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	Code           string
	Status         string
	Total          decimal.Decimal
	RestaurantName string
	CreatedAt      time.Time
}
