package enums

import "fmt"

// LineItemStatus tracks the delivery state of an order line item. Items are
// never removed from an order; cancellation and returns are soft states.
type LineItemStatus string

const (
	LineItemStatusPending   LineItemStatus = "pending"
	LineItemStatusDelivered LineItemStatus = "delivered"
	LineItemStatusCancelled LineItemStatus = "cancelled"
	LineItemStatusReturned  LineItemStatus = "returned"
)

var validLineItemStatuses = []LineItemStatus{
	LineItemStatusPending,
	LineItemStatusDelivered,
	LineItemStatusCancelled,
	LineItemStatusReturned,
}

// String implements fmt.Stringer.
func (l LineItemStatus) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LineItemStatus.
func (l LineItemStatus) IsValid() bool {
	for _, candidate := range validLineItemStatuses {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLineItemStatus converts raw input into a LineItemStatus.
func ParseLineItemStatus(value string) (LineItemStatus, error) {
	for _, candidate := range validLineItemStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid line item status %q", value)
}
