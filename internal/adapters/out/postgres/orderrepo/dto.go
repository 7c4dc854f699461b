// Package orderrepo persists order aggregates. The snapshot's enumerable
// properties map onto relational columns, line items are stored as JSONB, and
// the credit card number is encrypted before it reaches the database.
package orderrepo

import (
	"encoding/json"

	"orderflow/internal/adapters/out/crypto"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	OrderNo              uuid.UUID `gorm:"type:uuid;primaryKey;column:order_no"`
	CustomerInfo         string
	OrderItems           []byte `gorm:"type:jsonb"`
	ShippingAddress      string
	BillingAddress       string
	CreditCardNumber     string
	PaymentAuthorization string
	ProofOfDelivery      string
	SignatureRequired    bool
	Status               int `gorm:"index"`
	Total                float64
	Version              int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// The credit card number is sealed by the codec so it is never stored in the clear.
func fromDomain(aggregate *order.Order, codec *crypto.Codec) (OrderDTO, error) {
	items, err := json.Marshal(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	card, err := codec.Encrypt(aggregate.CreditCardNumber())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		OrderNo:              aggregate.OrderNo().Bytes(),
		CustomerInfo:         aggregate.CustomerInfo(),
		OrderItems:           items,
		ShippingAddress:      aggregate.ShippingAddress(),
		BillingAddress:       aggregate.BillingAddress(),
		CreditCardNumber:     card,
		PaymentAuthorization: aggregate.PaymentAuthorization(),
		ProofOfDelivery:      aggregate.ProofOfDelivery(),
		SignatureRequired:    aggregate.SignatureRequired(),
		Status:               int(aggregate.Status()),
		Total:                aggregate.Total(),
		Version:              aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the snapshot property map and restores the aggregate at the
// stored version without re-running the creation pipeline.
func toDomain(dto OrderDTO, codec *crypto.Codec) (*order.Order, error) {
	orderNo, err := kernel.UUIDFromBytes(dto.OrderNo[:])
	if err != nil {
		return nil, err
	}

	card, err := codec.Decrypt(dto.CreditCardNumber)
	if err != nil {
		return nil, err
	}

	var items []order.Item
	if len(dto.OrderItems) > 0 {
		if err = json.Unmarshal(dto.OrderItems, &items); err != nil {
			return nil, err
		}
	}

	values := map[string]any{
		order.PropOrderNo:           orderNo,
		order.PropCustomerInfo:      dto.CustomerInfo,
		order.PropOrderItems:        items,
		order.PropShippingAddress:   dto.ShippingAddress,
		order.PropBillingAddress:    dto.BillingAddress,
		order.PropCreditCardNumber:  card,
		order.PropSignatureRequired: dto.SignatureRequired,
		order.PropOrderStatus:       order.Status(dto.Status),
		order.PropOrderTotal:        dto.Total,
	}
	if dto.PaymentAuthorization != "" {
		values[order.PropPaymentAuthorization] = dto.PaymentAuthorization
	}
	if dto.ProofOfDelivery != "" {
		values[order.PropProofOfDelivery] = dto.ProofOfDelivery
	}

	return order.RestoreOrder(values, dto.Version)
}
