package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order projection from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderNo)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s, total %.2f\n", resp.OrderNo, resp.Status, resp.Total)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no order exists
// under the given identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_no,
			customer_info,
			order_items,
			shipping_address,
			billing_address,
			proof_of_delivery,
			signature_required,
			status,
			total,
			version
		FROM orders
		WHERE order_no = ?
	`, query.OrderNo().String()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var items []byte
	var status int
	var proof sql.NullString

	err := row.Scan(
		&id,
		&resp.CustomerInfo,
		&items,
		&resp.ShippingAddress,
		&resp.BillingAddress,
		&proof,
		&resp.SignatureRequired,
		&status,
		&resp.Total,
		&resp.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderNo", query.OrderNo())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderNo, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.OrderNo = orderNo
	resp.ProofOfDelivery = proof.String
	resp.Status = order.Status(status)

	if len(items) > 0 {
		if err = json.Unmarshal(items, &resp.OrderItems); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	return resp, nil
}
