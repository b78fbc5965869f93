package cardano

import (
	"net/url"
	"strconv"
	"time"

	"github.com/angelmondragon/cardano-wallet-go/pkg/enums"
)

// defaultMinWithdrawal is sent with every transaction listing unless the
// caller clears the parameter explicitly.
const defaultMinWithdrawal = 1

// timestampFormat renders start/end query values as ISO-8601 with zone offset.
const timestampFormat = time.RFC3339

// CreateRestoreWalletParams contains the fields required to create or restore
// a wallet from a recovery phrase.
type CreateRestoreWalletParams struct {
	Name             string           `validate:"required"`
	Passphrase       string           `validate:"required"`
	MnemonicSentence MnemonicSentence `validate:"required"`
	AddressPoolGap   *int
}

type createRestoreWalletBody struct {
	Name             string   `json:"name"`
	Passphrase       string   `json:"passphrase"`
	MnemonicSentence []string `json:"mnemonic_sentence"`
	AddressPoolGap   *int     `json:"address_pool_gap,omitempty"`
}

func (p CreateRestoreWalletParams) body() createRestoreWalletBody {
	return createRestoreWalletBody{
		Name:             p.Name,
		Passphrase:       p.Passphrase,
		MnemonicSentence: []string(p.MnemonicSentence),
		AddressPoolGap:   p.AddressPoolGap,
	}
}

// ListTransactionsParams narrows and orders a wallet's transaction listing.
// The zero value of Order falls back to descending; a nil MinWithdrawal sends
// the default of 1, and OmitMinWithdrawal drops the parameter entirely.
type ListTransactionsParams struct {
	WalletID          string `validate:"required"`
	Start             *time.Time
	End               *time.Time
	Order             enums.Order
	MinWithdrawal     *int
	OmitMinWithdrawal bool
}

func (p ListTransactionsParams) query() url.Values {
	q := url.Values{}
	if p.Start != nil {
		q.Set("start", p.Start.Format(timestampFormat))
	}
	if p.End != nil {
		q.Set("end", p.End.Format(timestampFormat))
	}
	order := p.Order
	if !order.IsValid() {
		order = enums.OrderDescending
	}
	q.Set("order", order.String())
	if !p.OmitMinWithdrawal {
		minWithdrawal := defaultMinWithdrawal
		if p.MinWithdrawal != nil {
			minWithdrawal = *p.MinWithdrawal
		}
		q.Set("minWithdrawal", strconv.Itoa(minWithdrawal))
	}
	return q
}

// CreateTransactionParams describes a signed payment submission.
type CreateTransactionParams struct {
	WalletID   string   `validate:"required"`
	Passphrase string   `validate:"required"`
	Payments   Payments `validate:"required"`
	Withdrawal *string
}

type createTransactionBody struct {
	Passphrase string    `json:"passphrase"`
	Payments   []Payment `json:"payments"`
	Withdrawal *string   `json:"withdrawal,omitempty"`
}

func (p CreateTransactionParams) body() createTransactionBody {
	return createTransactionBody{
		Passphrase: p.Passphrase,
		Payments:   p.Payments.Payments,
		Withdrawal: p.Withdrawal,
	}
}

// SelfWithdrawal is the withdrawal identifier for the wallet's own reward
// account, the backend's default for fee estimation.
const SelfWithdrawal = "self"

// EstimateFeeParams describes a fee estimation for a payment set. An empty
// Withdrawal falls back to SelfWithdrawal.
type EstimateFeeParams struct {
	WalletID   string   `validate:"required"`
	Payments   Payments `validate:"required"`
	Withdrawal string
}

type estimateFeeBody struct {
	Payments   []Payment `json:"payments"`
	Withdrawal string    `json:"withdrawal"`
}

func (p EstimateFeeParams) body() estimateFeeBody {
	withdrawal := p.Withdrawal
	if withdrawal == "" {
		withdrawal = SelfWithdrawal
	}
	return estimateFeeBody{
		Payments:   p.Payments.Payments,
		Withdrawal: withdrawal,
	}
}

// UpdatePassphraseParams carries a passphrase rotation.
type UpdatePassphraseParams struct {
	WalletID      string `validate:"required"`
	OldPassphrase string `validate:"required"`
	NewPassphrase string `validate:"required"`
}

type updatePassphraseBody struct {
	OldPassphrase string `json:"old_passphrase"`
	NewPassphrase string `json:"new_passphrase"`
}

func (p UpdatePassphraseParams) body() updatePassphraseBody {
	return updatePassphraseBody{
		OldPassphrase: p.OldPassphrase,
		NewPassphrase: p.NewPassphrase,
	}
}
