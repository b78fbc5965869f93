package cardano

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/cardano-wallet-go/pkg/errors"
)

func TestLovelaceToAda(t *testing.T) {
	cases := []struct {
		lovelace uint64
		ada      string
	}{
		{lovelace: 1000000, ada: "1"},
		{lovelace: 1500000, ada: "1.5"},
		{lovelace: 1, ada: "0.000001"},
		{lovelace: 0, ada: "0"},
	}
	for _, tc := range cases {
		got := Lovelace(tc.lovelace).Ada()
		want := decimal.RequireFromString(tc.ada)
		if !got.Equal(want) {
			t.Fatalf("Lovelace(%d).Ada() = %s, want %s", tc.lovelace, got, want)
		}
	}
}

func TestNewMnemonicSentence(t *testing.T) {
	sentence := NewMnemonicSentence("  vault  cloth tragic\tfunny ")
	if len(sentence) != 4 {
		t.Fatalf("expected 4 words, got %d: %v", len(sentence), sentence)
	}
	if sentence[0] != "vault" || sentence[3] != "funny" {
		t.Fatalf("unexpected words %v", sentence)
	}
}

func TestErrorMessageError(t *testing.T) {
	err := &ErrorMessage{Message: "no such wallet", Code: "no_such_wallet"}
	if err.Error() != "no_such_wallet: no such wallet" {
		t.Fatalf("unexpected error string %q", err.Error())
	}

	var nilErr *ErrorMessage
	if nilErr.Error() != "" {
		t.Fatalf("nil error should render empty")
	}
}

func TestAsErrorMessageChannels(t *testing.T) {
	apiErr := &ErrorMessage{Message: "rejected", Code: "bad_request"}
	if got := AsErrorMessage(apiErr); got != apiErr {
		t.Fatalf("expected typed error back, got %v", got)
	}
	if got := AsErrorMessage(pkgerrors.New(pkgerrors.CodeDependency, "down")); got != nil {
		t.Fatalf("transport errors must not convert, got %v", got)
	}
	if got := AsErrorMessage(nil); got != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestWalletJSONRoundsThroughSnakeCase(t *testing.T) {
	raw := `{"id":"w1","address_pool_gap":20,"name":"primary",` +
		`"balance":{"available":{"quantity":10,"unit":"lovelace"},"reward":{"quantity":0,"unit":"lovelace"},"total":{"quantity":10,"unit":"lovelace"}},` +
		`"passphrase":{"last_updated_at":"2026-08-01T12:00:00Z"},` +
		`"state":{"status":"syncing","progress":{"quantity":91,"unit":"percent"}},` +
		`"tip":{"epoch_number":14,"slot_number":1337,"height":{"quantity":10000,"unit":"block"}}}`

	var w Wallet
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal wallet: %v", err)
	}
	if w.Passphrase == nil || w.Passphrase.LastUpdatedAt.IsZero() {
		t.Fatalf("passphrase timestamp not decoded: %+v", w.Passphrase)
	}
	if w.State.Progress == nil || w.State.Progress.Quantity != 91 {
		t.Fatalf("progress not decoded: %+v", w.State)
	}
	if w.Tip.Height == nil || w.Tip.Height.Quantity != 10000 {
		t.Fatalf("tip height not decoded: %+v", w.Tip)
	}

	encoded, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal wallet: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		t.Fatalf("unmarshal encoded wallet: %v", err)
	}
	if _, present := fields["address_pool_gap"]; !present {
		t.Fatalf("expected snake_case field, got %v", fields)
	}
}

func TestTransactionOptionalFieldsOmitted(t *testing.T) {
	tx := Transaction{ID: "tx1", Amount: Lovelace(5)}
	encoded, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal transaction: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		t.Fatalf("unmarshal encoded transaction: %v", err)
	}
	for _, absent := range []string{"inserted_at", "pending_since", "depth", "withdrawals"} {
		if _, present := fields[absent]; present {
			t.Fatalf("field %q should be omitted when unset", absent)
		}
	}
}
