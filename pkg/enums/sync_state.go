package enums

import (
	"encoding/json"
	"fmt"
)

// SyncState describes node or wallet synchronization progress.
type SyncState string

const (
	SyncStateReady         SyncState = "ready"
	SyncStateSyncing       SyncState = "syncing"
	SyncStateNotResponding SyncState = "not_responding"
)

var validSyncStates = []SyncState{
	SyncStateReady,
	SyncStateSyncing,
	SyncStateNotResponding,
}

// String implements fmt.Stringer.
func (s SyncState) String() string {
	return string(s)
}

// IsValid reports whether the state is recognized.
func (s SyncState) IsValid() bool {
	for _, candidate := range validSyncStates {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSyncState converts a raw string into a SyncState.
func ParseSyncState(value string) (SyncState, error) {
	for _, candidate := range validSyncStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sync state %q", value)
}

// UnmarshalJSON rejects values outside the closed set.
func (s *SyncState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSyncState(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
