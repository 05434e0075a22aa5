package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hmucanze19/algafood-api/internal/core/ports"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler answers the menu view, reading through the
// menu cache. Cache failures degrade to a database read; they never fail the
// query.
type GetRestaurantMenuQueryHandler struct {
	db     *gorm.DB
	cache  ports.MenuCache
	logger *slog.Logger
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu queries.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB, cache ports.MenuCache, logger *slog.Logger) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle executes the query and returns the restaurant's active products.
// An unknown restaurant yields an entity-not-found error.
func (h GetRestaurantMenuQueryHandler) Handle(ctx context.Context, query GetRestaurantMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if payload, ok, err := h.cache.Get(ctx, query.RestaurantID()); err != nil {
		h.logger.Warn("menu cache read failed",
			"restaurant_id", query.RestaurantID(), "error", err)
	} else if ok {
		var items []MenuItemResponse
		if err = json.Unmarshal([]byte(payload), &items); err == nil {
			return items, nil
		}
		h.logger.Warn("menu cache payload is corrupt",
			"restaurant_id", query.RestaurantID(), "error", err)
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = ?)", query.RestaurantID()).
		Row().Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if !exists {
		return nil, errs.NewEntityNotFoundError(
			fmt.Sprintf("There is no restaurant with id %d", query.RestaurantID()))
	}

	items := make([]MenuItemResponse, 0)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price
		FROM products
		WHERE restaurant_id = ? AND active
		ORDER BY name, id
	`, query.RestaurantID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item MenuItemResponse
		err = rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err = h.cache.Set(ctx, query.RestaurantID(), string(payload)); err != nil {
			h.logger.Warn("menu cache write failed",
				"restaurant_id", query.RestaurantID(), "error", err)
		}
	}

	return items, nil
}
