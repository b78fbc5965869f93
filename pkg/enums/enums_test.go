package enums

import (
	"encoding/json"
	"testing"
)

func TestOrderLiterals(t *testing.T) {
	if OrderAscending.String() != "ascending" || OrderDescending.String() != "descending" {
		t.Fatalf("order literals drifted: %q %q", OrderAscending, OrderDescending)
	}
	if !OrderDescending.IsValid() {
		t.Fatalf("descending should be valid")
	}
	if Order("random").IsValid() {
		t.Fatalf("unknown order should be invalid")
	}
	if _, err := ParseOrder("ascending"); err != nil {
		t.Fatalf("parse ascending: %v", err)
	}
	if _, err := ParseOrder("ASCENDING"); err == nil {
		t.Fatalf("parse should be case sensitive")
	}
}

func TestAddressFilterLiterals(t *testing.T) {
	if AddressFilterUsed.String() != "used" || AddressFilterUnused.String() != "unused" {
		t.Fatalf("address filter literals drifted")
	}
	if _, err := ParseAddressFilter("used"); err != nil {
		t.Fatalf("parse used: %v", err)
	}
	if _, err := ParseAddressFilter("spent"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestTxEnums(t *testing.T) {
	for _, d := range []TxDirection{TxDirectionIncoming, TxDirectionOutgoing} {
		if !d.IsValid() {
			t.Fatalf("direction %q should be valid", d)
		}
	}
	for _, s := range []TxState{TxStatePending, TxStateInLedger, TxStateExpired} {
		if !s.IsValid() {
			t.Fatalf("state %q should be valid", s)
		}
	}
	if _, err := ParseTxState("in_ledger"); err != nil {
		t.Fatalf("parse in_ledger: %v", err)
	}
	if TxState("confirmed").IsValid() {
		t.Fatalf("confirmed is not a ledger state")
	}
}

func TestSyncStates(t *testing.T) {
	if _, err := ParseSyncState("ready"); err != nil {
		t.Fatalf("parse ready: %v", err)
	}
	if SyncState("stalled").IsValid() {
		t.Fatalf("stalled is not a sync state")
	}
}

func TestEnumDecodeRejectsUnknownMembers(t *testing.T) {
	var o Order
	if err := json.Unmarshal([]byte(`"ascending"`), &o); err != nil || o != OrderAscending {
		t.Fatalf("decode ascending: %v %q", err, o)
	}
	if err := json.Unmarshal([]byte(`"random"`), &o); err == nil {
		t.Fatalf("unknown order should fail to decode")
	}

	var f AddressFilter
	if err := json.Unmarshal([]byte(`"unused"`), &f); err != nil || f != AddressFilterUnused {
		t.Fatalf("decode unused: %v %q", err, f)
	}
	if err := json.Unmarshal([]byte(`"spent"`), &f); err == nil {
		t.Fatalf("unknown filter should fail to decode")
	}

	var d TxDirection
	if err := json.Unmarshal([]byte(`"incoming"`), &d); err != nil || d != TxDirectionIncoming {
		t.Fatalf("decode incoming: %v %q", err, d)
	}
	if err := json.Unmarshal([]byte(`"sideways"`), &d); err == nil {
		t.Fatalf("unknown direction should fail to decode")
	}

	var s TxState
	if err := json.Unmarshal([]byte(`"in_ledger"`), &s); err != nil || s != TxStateInLedger {
		t.Fatalf("decode in_ledger: %v %q", err, s)
	}
	if err := json.Unmarshal([]byte(`"confirmed"`), &s); err == nil {
		t.Fatalf("unknown state should fail to decode")
	}

	var ss SyncState
	if err := json.Unmarshal([]byte(`"syncing"`), &ss); err != nil || ss != SyncStateSyncing {
		t.Fatalf("decode syncing: %v %q", err, ss)
	}
	if err := json.Unmarshal([]byte(`"stalled"`), &ss); err == nil {
		t.Fatalf("unknown sync state should fail to decode")
	}
}

func TestEnumDecodeRejectsNonString(t *testing.T) {
	var o Order
	if err := json.Unmarshal([]byte(`7`), &o); err == nil {
		t.Fatalf("numeric order should fail to decode")
	}
	var ss SyncState
	if err := json.Unmarshal([]byte(`{"status":"ready"}`), &ss); err == nil {
		t.Fatalf("object should fail to decode into sync state")
	}
}
