package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a request to submit a new food order.
// Encapsulates the service area, the customer delivery address, and the
// submitted line items exactly as received.
//
// Construction validates only the presence of the three fields; individual
// line items may be invalid and are handled downstream by the aggregation
// (skipped, never rejected).
//
// Example:
//
//	items := []order.LineItem{order.NewLineItem("M1", 2)}
//	cmd, err := NewSubmitOrderCommand("downtown", "1 Main St", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order submission: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	resp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	fmt.Printf("Order %s costs %s, arriving in %d minutes",
//	    resp.OrderID, resp.TotalCost, resp.EstDeliveryMinutes)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	area    string
	address string
	items   []order.LineItem

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// Validates that area and address are non-empty and that at least one line
// item was submitted. Returns an error if any validation fails.
func NewSubmitOrderCommand(area string, address string, items []order.LineItem) (SubmitOrderCommand, error) {
	orderCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setArea(area),
		orderCommand.setAddress(address),
		orderCommand.setItems(items),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Area returns the service area the order targets.
func (c SubmitOrderCommand) Area() string {
	return c.area
}

// Address returns the customer delivery address.
func (c SubmitOrderCommand) Address() string {
	return c.address
}

// Items returns the submitted line items in their original order.
func (c SubmitOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c *SubmitOrderCommand) setArea(area string) error {
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}

	c.area = area
	return nil
}

func (c *SubmitOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *SubmitOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
