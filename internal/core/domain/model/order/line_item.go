package order

// LineItem is a value object representing a requested (mealId, qty) pair
// within an order submission.
//
// A LineItem is allowed to be invalid: items with an empty meal id or a
// non-positive quantity are kept on the order as submitted but are excluded
// from cost and preparation-time totals. That exclusion is a
// validation-by-omission policy, not a failure, so construction never errors.
type LineItem struct {
	mealID string
	qty    int
}

// NewLineItem creates a line item for the given meal id and quantity.
// No validation happens here; uncountable items are skipped during aggregation.
func NewLineItem(mealID string, qty int) LineItem {
	return LineItem{
		mealID: mealID,
		qty:    qty,
	}
}

// MealID returns the referenced meal identifier. May be empty.
func (li LineItem) MealID() string {
	return li.mealID
}

// Qty returns the requested quantity. May be zero or negative.
func (li LineItem) Qty() int {
	return li.qty
}

// IsCountable reports whether the item participates in order totals.
// An item counts when it references a meal and requests a positive quantity.
func (li LineItem) IsCountable() bool {
	return li.mealID != "" && li.qty > 0
}
