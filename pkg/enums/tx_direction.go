package enums

import (
	"encoding/json"
	"fmt"
)

// TxDirection indicates whether a transaction moves funds into or out of the
// wallet it was fetched for.
type TxDirection string

const (
	TxDirectionIncoming TxDirection = "incoming"
	TxDirectionOutgoing TxDirection = "outgoing"
)

var validTxDirections = []TxDirection{
	TxDirectionIncoming,
	TxDirectionOutgoing,
}

// String implements fmt.Stringer.
func (d TxDirection) String() string {
	return string(d)
}

// IsValid reports whether the direction is recognized.
func (d TxDirection) IsValid() bool {
	for _, candidate := range validTxDirections {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseTxDirection converts a raw string into a TxDirection.
func ParseTxDirection(value string) (TxDirection, error) {
	for _, candidate := range validTxDirections {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction direction %q", value)
}

// UnmarshalJSON rejects values outside the closed set.
func (d *TxDirection) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTxDirection(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
