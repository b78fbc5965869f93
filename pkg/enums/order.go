package enums

import (
	"encoding/json"
	"fmt"
)

// Order is the sort direction accepted by list endpoints.
type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

var validOrders = []Order{
	OrderAscending,
	OrderDescending,
}

// String implements fmt.Stringer.
func (o Order) String() string {
	return string(o)
}

// IsValid reports whether the order is recognized.
func (o Order) IsValid() bool {
	for _, candidate := range validOrders {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrder converts a raw string into an Order.
func ParseOrder(value string) (Order, error) {
	for _, candidate := range validOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order %q", value)
}

// UnmarshalJSON rejects values outside the closed set.
func (o *Order) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseOrder(raw)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
