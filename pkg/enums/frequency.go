package enums

import "fmt"

// Frequency is the recurrence pattern of a subscribed line item.
type Frequency string

const (
	FrequencyOneTime Frequency = "oneTime"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

var validFrequencies = []Frequency{
	FrequencyOneTime,
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyMonthly,
}

// String implements fmt.Stringer.
func (f Frequency) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Frequency.
func (f Frequency) IsValid() bool {
	for _, candidate := range validFrequencies {
		if candidate == f {
			return true
		}
	}
	return false
}

// IsRecurring reports whether the frequency repeats within a billing month.
func (f Frequency) IsRecurring() bool {
	return f != FrequencyOneTime && f.IsValid()
}

// ParseFrequency converts raw input into a Frequency.
func ParseFrequency(value string) (Frequency, error) {
	for _, candidate := range validFrequencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid frequency %q", value)
}
