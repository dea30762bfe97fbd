package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderProcessing wraps any failure while resolving line items against
	// the meal catalog, including a missing meal. The submission fails as a
	// whole; no partial order is ever produced.
	ErrOrderProcessing = errors.New("failed to process order items")

	// ErrOrderPersistence wraps any failure while persisting the finalized
	// order record.
	ErrOrderPersistence = errors.New("failed to save order")
)

// SubmitOrderCommandResponse is the outcome of a successful submission.
type SubmitOrderCommandResponse struct {
	// OrderID is the freshly generated identifier of the persisted order.
	OrderID kernel.UUID

	// TotalCost is the aggregated decimal cost snapshot.
	TotalCost decimal.Decimal

	// EstDeliveryMinutes is the delivery estimate for the order.
	EstDeliveryMinutes int
}

// SubmitOrderCommandHandler handles the business logic for order submission.
// Resolves line items against the meal catalog, computes the cost and
// delivery estimate, and persists exactly one new order record under a
// freshly generated identifier.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand("downtown", "1 Main St", items)
//
//	resp, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderProcessing) {
//	    // A line item could not be resolved; nothing was persisted
//	}
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.DeliveryEstimator
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
// Requires an OrderUoWFactory for transactional persistence.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  services.NewDeliveryEstimator(),
	}
}

// Handle processes the order submission command.
//
// The workflow is aggregate -> estimate -> persist:
//  1. resolve every countable line item and accumulate totals; any lookup
//     failure aborts with ErrOrderProcessing
//  2. compute the delivery estimate from the aggregated preparation time
//  3. insert a single order record keyed (area, generated UUID); a write
//     failure aborts with ErrOrderPersistence and leaves nothing visible
func (h *SubmitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitOrderCommand,
) (SubmitOrderCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitOrderCommandResponse{}, fmt.Errorf("%w: %w", ErrOrderPersistence, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregator := services.NewOrderAggregator(uow.MealRepository())
	totals, err := aggregator.Aggregate(ctx, cmd.Area(), cmd.Items())
	if err != nil {
		return SubmitOrderCommandResponse{}, fmt.Errorf("%w: %w", ErrOrderProcessing, err)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Area(),
		cmd.Address(),
		cmd.Items(),
		totals.Cost,
		h.estimator.Estimate(totals.PrepMinutes),
		time.Now().UTC(),
	)
	if err != nil {
		return SubmitOrderCommandResponse{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return SubmitOrderCommandResponse{}, fmt.Errorf("%w: %w", ErrOrderPersistence, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitOrderCommandResponse{}, fmt.Errorf("%w: %w", ErrOrderPersistence, err)
	}

	return SubmitOrderCommandResponse{
		OrderID:            newOrder.ID(),
		TotalCost:          newOrder.TotalCost(),
		EstDeliveryMinutes: newOrder.EstDeliveryMinutes(),
	}, nil
}
