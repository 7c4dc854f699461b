package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetIncompleteOrdersQueryHandler retrieves orders that have not reached a
// terminal status, sorted by identifier for consistent output.
type GetIncompleteOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetIncompleteOrdersQueryHandler creates a handler for in-flight order queries.
func NewGetIncompleteOrdersQueryHandler(db *gorm.DB) GetIncompleteOrdersQueryHandler {
	return GetIncompleteOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all incomplete orders.
func (h GetIncompleteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetIncompleteOrdersQuery,
) ([]GetIncompleteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetIncompleteOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_no,
			status,
			total
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY order_no
	`, int(order.Complete), int(order.Canceled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetIncompleteOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(&id, &status, &resp.Total)
		if err != nil {
			return nil, err
		}

		orderNo, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderNo = orderNo
		resp.Status = order.Status(status)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
