// Package cardano is a typed client for the cardano-wallet HTTP API. Each
// remote operation is built as an inert, inspectable Request value and
// executed separately, so callers can examine the method, path, query, and
// body before any network traffic happens.
package cardano

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cardano-wallet-go/pkg/enums"
)

// LovelaceUnit is the denomination the wallet backend reports quantities in.
// 1 ADA = 1,000,000 lovelace.
const LovelaceUnit = "lovelace"

// QuantityUnit is an amount paired with its denomination.
type QuantityUnit struct {
	Quantity uint64 `json:"quantity"`
	Unit     string `json:"unit"`
}

// Lovelace builds a QuantityUnit denominated in lovelace.
func Lovelace(quantity uint64) QuantityUnit {
	return QuantityUnit{Quantity: quantity, Unit: LovelaceUnit}
}

// Ada converts a lovelace quantity into ADA.
func (q QuantityUnit) Ada() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(q.Quantity), -6)
}

// Balance is the funds summary attached to a wallet.
type Balance struct {
	Available QuantityUnit `json:"available"`
	Reward    QuantityUnit `json:"reward"`
	Total     QuantityUnit `json:"total"`
}

// Passphrase reports when the spending passphrase last changed.
type Passphrase struct {
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// SyncProgress is the synchronization status of a wallet or node.
type SyncProgress struct {
	Status   enums.SyncState `json:"status"`
	Progress *QuantityUnit   `json:"progress,omitempty"`
}

// NetworkTip locates a point on the chain.
type NetworkTip struct {
	EpochNumber uint64        `json:"epoch_number"`
	SlotNumber  uint64        `json:"slot_number"`
	Height      *QuantityUnit `json:"height,omitempty"`
}

// NextEpoch announces the upcoming epoch boundary.
type NextEpoch struct {
	EpochStartTime time.Time `json:"epoch_start_time"`
	EpochNumber    uint64    `json:"epoch_number"`
}

// Wallet is a single wallet known to the backend.
type Wallet struct {
	ID             string       `json:"id"`
	AddressPoolGap int          `json:"address_pool_gap"`
	Balance        Balance      `json:"balance"`
	Name           string       `json:"name"`
	Passphrase     *Passphrase  `json:"passphrase,omitempty"`
	State          SyncProgress `json:"state"`
	Tip            NetworkTip   `json:"tip"`
}

// NetworkInfo is the backend's view of chain synchronization.
type NetworkInfo struct {
	SyncProgress SyncProgress `json:"sync_progress"`
	NodeTip      NetworkTip   `json:"node_tip"`
	NetworkTip   NetworkTip   `json:"network_tip"`
	NextEpoch    *NextEpoch   `json:"next_epoch,omitempty"`
}

// WalletAddressID is one address owned by a wallet, optionally annotated with
// its usage state.
type WalletAddressID struct {
	ID    string               `json:"id"`
	State *enums.AddressFilter `json:"state,omitempty"`
}

// Payment is a single destination and amount.
type Payment struct {
	Address string       `json:"address"`
	Amount  QuantityUnit `json:"amount"`
}

// Payments wraps the payment list the transaction endpoints expect.
type Payments struct {
	Payments []Payment `json:"payments"`
}

// MnemonicSentence is the recovery phrase as individual words.
type MnemonicSentence []string

// NewMnemonicSentence splits a whitespace-separated phrase into its words.
func NewMnemonicSentence(sentence string) MnemonicSentence {
	return MnemonicSentence(strings.Fields(sentence))
}

// TxInput is an input consumed by a transaction. Address and amount are only
// present for inputs the wallet can resolve.
type TxInput struct {
	Address string        `json:"address,omitempty"`
	Amount  *QuantityUnit `json:"amount,omitempty"`
	ID      string        `json:"id"`
	Index   int           `json:"index"`
}

// StakeAddress is a reward-account withdrawal attached to a transaction.
type StakeAddress struct {
	StakeAddress string       `json:"stake_address"`
	Amount       QuantityUnit `json:"amount"`
}

// TxBlock anchors a transaction lifecycle event to a chain position.
type TxBlock struct {
	Time  time.Time  `json:"time"`
	Block NetworkTip `json:"block"`
}

// Transaction is a wallet transaction as reported by the backend.
type Transaction struct {
	ID           string            `json:"id"`
	Amount       QuantityUnit      `json:"amount"`
	InsertedAt   *TxBlock          `json:"inserted_at,omitempty"`
	PendingSince *TxBlock          `json:"pending_since,omitempty"`
	Depth        *QuantityUnit     `json:"depth,omitempty"`
	Direction    enums.TxDirection `json:"direction"`
	Inputs       []TxInput         `json:"inputs"`
	Outputs      []Payment         `json:"outputs"`
	Withdrawals  []StakeAddress    `json:"withdrawals,omitempty"`
	Status       enums.TxState     `json:"status"`
}

// CreateTransactionResponse is the payload returned when a transaction is
// created or fetched by id. It is the same shape as a listed transaction.
type CreateTransactionResponse = Transaction

// EstimateFeeResponse is the fee range returned by the payment-fees endpoint.
type EstimateFeeResponse struct {
	EstimatedMin QuantityUnit `json:"estimated_min"`
	EstimatedMax QuantityUnit `json:"estimated_max"`
}

// FundPaymentsResponse is the coin selection proposed for a payment set.
type FundPaymentsResponse struct {
	Inputs  []TxInput `json:"inputs"`
	Outputs []Payment `json:"outputs"`
}

// Unit is the success payload of operations whose response body carries no
// information (delete wallet, update passphrase).
type Unit = struct{}

// Diagnostic codes attached to error messages the client synthesizes itself.
const (
	ErrCodeCannotDecode    = "cannot_decode_response"
	ErrCodeUnreadableError = "unreadable_error_response"
)

// ErrorMessage is the error body the wallet backend returns on non-2xx
// responses. The client also synthesizes one when a body cannot be decoded,
// using the diagnostic codes above.
type ErrorMessage struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *ErrorMessage) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsErrorMessage extracts the API-level error from err, or nil when the
// failure came from the transport or request construction instead.
func AsErrorMessage(err error) *ErrorMessage {
	if err == nil {
		return nil
	}
	var typed *ErrorMessage
	if errors.As(err, &typed) {
		return typed
	}
	return nil
}
