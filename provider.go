package fbar

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vasi/monarch-fbar/date"
)

// RemoteAccount is an account as the provider reports it, before any user
// classification.
type RemoteAccount struct {
	ID          string
	Institution string // empty when the provider has none
	Name        string
	Type        string
	IsAsset     bool
}

// AccountLister lists the accounts known to the remote provider.
type AccountLister interface {
	ListAccounts(ctx context.Context) ([]RemoteAccount, error)
}

// BalancePoint is one day of an account's balance history, in the
// account's local currency. Balances are signed.
type BalancePoint struct {
	Date    date.Date
	Balance decimal.Decimal
}

// BalanceHistorian returns the full daily balance history of one account,
// in chronological order.
type BalanceHistorian interface {
	BalanceHistory(ctx context.Context, accountID string) ([]BalancePoint, error)
}
