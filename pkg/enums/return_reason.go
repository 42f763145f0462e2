package enums

import "fmt"

// ReturnReason is the fixed set of reasons a delivered item can be returned.
type ReturnReason string

const (
	ReturnReasonRotten       ReturnReason = "rotten"
	ReturnReasonExpired      ReturnReason = "expired"
	ReturnReasonDamaged      ReturnReason = "damaged"
	ReturnReasonWrongItem    ReturnReason = "wrong_item"
	ReturnReasonQualityIssue ReturnReason = "quality_issue"
)

var validReturnReasons = []ReturnReason{
	ReturnReasonRotten,
	ReturnReasonExpired,
	ReturnReasonDamaged,
	ReturnReasonWrongItem,
	ReturnReasonQualityIssue,
}

// String implements fmt.Stringer.
func (r ReturnReason) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReturnReason.
func (r ReturnReason) IsValid() bool {
	for _, candidate := range validReturnReasons {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReturnReason converts raw input into a ReturnReason.
func ParseReturnReason(value string) (ReturnReason, error) {
	for _, candidate := range validReturnReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid return reason %q", value)
}
