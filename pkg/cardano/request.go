package cardano

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/angelmondragon/cardano-wallet-go/pkg/enums"
	pkgerrors "github.com/angelmondragon/cardano-wallet-go/pkg/errors"
)

var validate = validator.New()

// Request describes one remote operation: the HTTP shape to send and the
// decoder for its response. Building a Request never performs I/O; failures
// during construction (validation, body marshalling) are carried inside and
// surface when the request is executed.
type Request[T any] struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte

	operation string
	decode    func(data []byte) (T, error)
	err       error
}

// Operation names the remote call for logging and metrics labels.
func (r *Request[T]) Operation() string {
	return r.operation
}

// Err reports a failure captured while the request was built.
func (r *Request[T]) Err() error {
	return r.err
}

// URL joins the request path and encoded query onto the given base URL.
func (r *Request[T]) URL(base string) string {
	joined := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		joined += "?" + r.Query.Encode()
	}
	return joined
}

func (r *Request[T]) setBody(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal "+r.operation+" body")
		return
	}
	r.Body = data
}

func (r *Request[T]) requireWalletID(walletID string) {
	if r.err == nil && strings.TrimSpace(walletID) == "" {
		r.err = pkgerrors.New(pkgerrors.CodeValidation, "wallet id is required")
	}
}

func (r *Request[T]) validateParams(params any) bool {
	if err := validate.Struct(params); err != nil {
		r.err = pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validate "+r.operation+" params")
		return false
	}
	return true
}

func (r *Request[T]) requirePayments(payments Payments) bool {
	if len(payments.Payments) == 0 {
		r.err = pkgerrors.New(pkgerrors.CodeValidation, "at least one payment is required")
		return false
	}
	return true
}

func decodeJSON[T any](data []byte) (T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func discardBody(_ []byte) (Unit, error) {
	return Unit{}, nil
}

// ListWallets lists every wallet known to the backend.
func ListWallets() *Request[[]Wallet] {
	return &Request[[]Wallet]{
		Method:    http.MethodGet,
		Path:      "wallets",
		operation: "listWallets",
		decode:    decodeJSON[[]Wallet],
	}
}

// GetWallet fetches a single wallet by id.
func GetWallet(walletID string) *Request[Wallet] {
	req := &Request[Wallet]{
		Method:    http.MethodGet,
		Path:      "wallets/" + url.PathEscape(walletID),
		operation: "getWallet",
		decode:    decodeJSON[Wallet],
	}
	req.requireWalletID(walletID)
	return req
}

// NetworkInformation fetches the backend's chain synchronization state.
func NetworkInformation() *Request[NetworkInfo] {
	return &Request[NetworkInfo]{
		Method:    http.MethodGet,
		Path:      "network/information",
		operation: "networkInfo",
		decode:    decodeJSON[NetworkInfo],
	}
}

// CreateRestoreWallet creates or restores a wallet from a recovery phrase.
// AddressPoolGap is omitted from the body when the caller leaves it nil.
func CreateRestoreWallet(params CreateRestoreWalletParams) *Request[Wallet] {
	req := &Request[Wallet]{
		Method:    http.MethodPost,
		Path:      "wallets",
		operation: "createRestoreWallet",
		decode:    decodeJSON[Wallet],
	}
	if !req.validateParams(params) {
		return req
	}
	req.setBody(params.body())
	return req
}

// ListAddresses lists a wallet's addresses, optionally filtered by usage
// state. A nil state sends no query string at all.
func ListAddresses(walletID string, state *enums.AddressFilter) *Request[[]WalletAddressID] {
	req := &Request[[]WalletAddressID]{
		Method:    http.MethodGet,
		Path:      "wallets/" + url.PathEscape(walletID) + "/addresses",
		operation: "listAddresses",
		decode:    decodeJSON[[]WalletAddressID],
	}
	req.requireWalletID(walletID)
	if state != nil {
		if !state.IsValid() {
			req.err = pkgerrors.New(pkgerrors.CodeValidation, "invalid address filter "+state.String())
			return req
		}
		req.Query = url.Values{"state": []string{state.String()}}
	}
	return req
}

// ListTransactions lists a wallet's transactions within the given window and
// ordering. Absent optional values are omitted from the query entirely.
func ListTransactions(params ListTransactionsParams) *Request[[]Transaction] {
	req := &Request[[]Transaction]{
		Method:    http.MethodGet,
		Path:      "wallets/" + url.PathEscape(params.WalletID) + "/transactions",
		operation: "listTransactions",
		decode:    decodeJSON[[]Transaction],
	}
	if !req.validateParams(params) {
		return req
	}
	req.Query = params.query()
	return req
}

// CreateTransaction submits a payment from the given wallet.
func CreateTransaction(params CreateTransactionParams) *Request[Transaction] {
	req := &Request[Transaction]{
		Method:    http.MethodPost,
		Path:      "wallets/" + url.PathEscape(params.WalletID) + "/transactions",
		operation: "createTransaction",
		decode:    decodeJSON[Transaction],
	}
	if !req.validateParams(params) || !req.requirePayments(params.Payments) {
		return req
	}
	req.setBody(params.body())
	return req
}

// EstimateFee asks the backend for the fee range of a payment set.
func EstimateFee(params EstimateFeeParams) *Request[EstimateFeeResponse] {
	req := &Request[EstimateFeeResponse]{
		Method:    http.MethodPost,
		Path:      "wallets/" + url.PathEscape(params.WalletID) + "/payment-fees",
		operation: "estimateFee",
		decode:    decodeJSON[EstimateFeeResponse],
	}
	if !req.validateParams(params) || !req.requirePayments(params.Payments) {
		return req
	}
	req.setBody(params.body())
	return req
}

// FundPayments asks the backend to select inputs covering the payment set.
func FundPayments(walletID string, payments Payments) *Request[FundPaymentsResponse] {
	req := &Request[FundPaymentsResponse]{
		Method:    http.MethodPost,
		Path:      "wallets/" + url.PathEscape(walletID) + "/coin-selections/random",
		operation: "fundPayments",
		decode:    decodeJSON[FundPaymentsResponse],
	}
	req.requireWalletID(walletID)
	if req.err != nil || !req.requirePayments(payments) {
		return req
	}
	req.setBody(payments)
	return req
}

// GetTransaction fetches one transaction of a wallet by id.
func GetTransaction(walletID, transactionID string) *Request[Transaction] {
	req := &Request[Transaction]{
		Method:    http.MethodGet,
		Path:      "wallets/" + url.PathEscape(walletID) + "/transactions/" + url.PathEscape(transactionID),
		operation: "getTransaction",
		decode:    decodeJSON[Transaction],
	}
	req.requireWalletID(walletID)
	if req.err == nil && strings.TrimSpace(transactionID) == "" {
		req.err = pkgerrors.New(pkgerrors.CodeValidation, "transaction id is required")
	}
	return req
}

// UpdatePassphrase rotates a wallet's spending passphrase. Success carries no
// payload.
func UpdatePassphrase(params UpdatePassphraseParams) *Request[Unit] {
	req := &Request[Unit]{
		Method:    http.MethodPut,
		Path:      "wallets/" + url.PathEscape(params.WalletID) + "/passphrase",
		operation: "updatePassphrase",
		decode:    discardBody,
	}
	if !req.validateParams(params) {
		return req
	}
	req.setBody(params.body())
	return req
}

// DeleteWallet removes a wallet from the backend. Success carries no payload.
func DeleteWallet(walletID string) *Request[Unit] {
	req := &Request[Unit]{
		Method:    http.MethodDelete,
		Path:      "wallets/" + url.PathEscape(walletID),
		operation: "deleteWallet",
		decode:    discardBody,
	}
	req.requireWalletID(walletID)
	return req
}
