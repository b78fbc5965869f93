package enums

import (
	"encoding/json"
	"fmt"
)

// TxState is the ledger status of a transaction.
type TxState string

const (
	TxStatePending  TxState = "pending"
	TxStateInLedger TxState = "in_ledger"
	TxStateExpired  TxState = "expired"
)

var validTxStates = []TxState{
	TxStatePending,
	TxStateInLedger,
	TxStateExpired,
}

// String implements fmt.Stringer.
func (s TxState) String() string {
	return string(s)
}

// IsValid reports whether the state is recognized.
func (s TxState) IsValid() bool {
	for _, candidate := range validTxStates {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTxState converts a raw string into a TxState.
func ParseTxState(value string) (TxState, error) {
	for _, candidate := range validTxStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction state %q", value)
}

// UnmarshalJSON rejects values outside the closed set.
func (s *TxState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTxState(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
