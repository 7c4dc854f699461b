// Package http adapts the REST API onto the application's commands and
// queries. Request bodies become change sets; guard rejections map onto 4xx
// responses so callers can tell a refused change from a server fault.
package http

import (
	"errors"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderHandler:            getOrderHandler,
		getIncompleteOrdersHandler: getIncompleteOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.Item, len(newOrder.OrderItems))
	for i, item := range newOrder.OrderItems {
		items[i] = order.Item{ItemID: item.ItemId, Price: item.Price}
	}

	attrs := commands.CreateOrderAttributes{
		CustomerInfo:     newOrder.CustomerInfo,
		OrderItems:       items,
		ShippingAddress:  newOrder.ShippingAddress,
		BillingAddress:   newOrder.BillingAddress,
		CreditCardNumber: newOrder.CreditCardNumber,
	}
	if newOrder.SignatureRequired != nil {
		attrs.SignatureRequired = *newOrder.SignatureRequired
	}

	orderNo := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderNo, attrs)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{OrderNo: orderNo.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves incomplete orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetIncompleteOrdersQuery()

	orders, err := s.getIncompleteOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			OrderNo:     o.OrderNo.Bytes(),
			OrderStatus: o.Status.String(),
			OrderTotal:  o.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderNo} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderNo openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderNo[:])
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	items := make([]servers.OrderItem, len(resp.OrderItems))
	for i, item := range resp.OrderItems {
		items[i] = servers.OrderItem{ItemId: item.ItemID, Price: item.Price}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		OrderNo:           resp.OrderNo.Bytes(),
		CustomerInfo:      &resp.CustomerInfo,
		OrderItems:        &items,
		ShippingAddress:   &resp.ShippingAddress,
		BillingAddress:    &resp.BillingAddress,
		ProofOfDelivery:   &resp.ProofOfDelivery,
		SignatureRequired: &resp.SignatureRequired,
		OrderStatus:       resp.Status.String(),
		OrderTotal:        resp.Total,
		Version:           resp.Version,
	})
}

// UpdateOrder handles PATCH /api/v1/orders/{orderNo} - applies a change set.
func (s *Server) UpdateOrder(ctx echo.Context, orderNo openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderNo[:])
	if err != nil {
		return s.renderError(ctx, err)
	}

	var body servers.OrderChanges
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	changes, err := changeSetFromBody(body)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, changes)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderNo} - removes a terminal order.
func (s *Server) DeleteOrder(ctx echo.Context, orderNo openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderNo[:])
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// changeSetFromBody converts the request body into the change set handed to
// the pipeline. Unrecognized keys are passed through on purpose: the
// allow-list guard owns that rejection, so the caller gets the same answer
// whether a key is refused by the schema or by the domain.
func changeSetFromBody(body servers.OrderChanges) (map[string]any, error) {
	changes := make(map[string]any)
	for k, v := range body.AdditionalProperties {
		changes[k] = v
	}

	if body.OrderStatus != nil {
		status, err := order.ParseStatus(string(*body.OrderStatus))
		if err != nil {
			return nil, err
		}
		changes[order.PropOrderStatus] = status
	}
	if body.CustomerInfo != nil {
		changes[order.PropCustomerInfo] = *body.CustomerInfo
	}
	if body.OrderItems != nil {
		items := make([]order.Item, len(*body.OrderItems))
		for i, item := range *body.OrderItems {
			items[i] = order.Item{ItemID: item.ItemId, Price: item.Price}
		}
		changes[order.PropOrderItems] = items
	}
	if body.ShippingAddress != nil {
		changes[order.PropShippingAddress] = *body.ShippingAddress
	}
	if body.BillingAddress != nil {
		changes[order.PropBillingAddress] = *body.BillingAddress
	}
	if body.CreditCardNumber != nil {
		changes[order.PropCreditCardNumber] = *body.CreditCardNumber
	}
	if body.PaymentAuthorization != nil {
		changes[order.PropPaymentAuthorization] = *body.PaymentAuthorization
	}
	if body.ProofOfDelivery != nil {
		changes[order.PropProofOfDelivery] = *body.ProofOfDelivery
	}
	if body.SignatureRequired != nil {
		changes[order.PropSignatureRequired] = *body.SignatureRequired
	}

	return changes, nil
}

// renderError maps domain errors onto API responses.
func (s *Server) renderError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrOrderNotReady),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValidationFailed),
		errors.Is(err, errs.ErrMissingProperty),
		errors.Is(err, errs.ErrImmutableProperty),
		errors.Is(err, errs.ErrUnknownProperty),
		errors.Is(err, errs.ErrInvalidStatusChange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}
