package enums

import (
	"encoding/json"
	"fmt"
)

// AddressFilter narrows address listings to a single usage state.
type AddressFilter string

const (
	AddressFilterUsed   AddressFilter = "used"
	AddressFilterUnused AddressFilter = "unused"
)

var validAddressFilters = []AddressFilter{
	AddressFilterUsed,
	AddressFilterUnused,
}

// String implements fmt.Stringer.
func (a AddressFilter) String() string {
	return string(a)
}

// IsValid reports whether the filter is recognized.
func (a AddressFilter) IsValid() bool {
	for _, candidate := range validAddressFilters {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAddressFilter converts a raw string into an AddressFilter.
func ParseAddressFilter(value string) (AddressFilter, error) {
	for _, candidate := range validAddressFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid address filter %q", value)
}

// UnmarshalJSON rejects values outside the closed set.
func (a *AddressFilter) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseAddressFilter(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
