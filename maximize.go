package fbar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vasi/monarch-fbar/date"
)

// AccountMax is the peak USD exposure of one account over one year.
type AccountMax struct {
	Account  Account
	Date     date.Date       // day of the peak; zero when there was no activity
	MaxLocal decimal.Decimal // balance in the account currency on that day
	MaxUSD   float64         // peak value in USD; -Inf when there was no activity
}

// HasActivity reports whether the account had any balance history entry in
// the year. An account without activity carries MaxUSD = -Inf and no date:
// a valid result for the presentation layer to filter out, not an error.
func (m AccountMax) HasActivity() bool { return !math.IsInf(m.MaxUSD, -1) }

// MaximizeAll computes the yearly maximum of every account, one goroutine
// per account: fetches are independent and I/O bound. Results follow the
// order of accounts, not completion order. Any failed account fails the
// whole call; a partial report would be worse than none.
func MaximizeAll(ctx context.Context, hist BalanceHistorian, rates *Rates, year int, accounts []Account) ([]AccountMax, error) {
	maxes := make([]AccountMax, len(accounts))
	errs := make([]error, len(accounts))

	var wg sync.WaitGroup
	for i, account := range accounts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			maxes[i], errs[i] = maximize(ctx, hist, rates, year, account)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return maxes, nil
}

// maximize scans one account's balance history for the year and keeps the
// day with the highest USD value. On equal USD values the earliest day
// wins: the provider returns history in date order.
func maximize(ctx context.Context, hist BalanceHistorian, rates *Rates, year int, account Account) (AccountMax, error) {
	history, err := hist.BalanceHistory(ctx, account.ID)
	if err != nil {
		return AccountMax{}, fmt.Errorf("cannot fetch balance history of %q: %w", account.Name, err)
	}

	symbol, ok := account.Currency.Symbol()
	if !ok {
		// Reconcile never hands over an unclassified or skipped account.
		return AccountMax{}, fmt.Errorf("account %q has no currency assigned", account.Name)
	}

	max := AccountMax{Account: account, MaxUSD: math.Inf(-1)}
	for _, point := range history {
		if point.Date.Year() != year {
			continue
		}
		value, err := rates.ToUSD(point.Date, symbol, point.Balance.InexactFloat64())
		if err != nil {
			return AccountMax{}, err
		}
		if value > max.MaxUSD {
			max = AccountMax{Account: account, Date: point.Date, MaxLocal: point.Balance, MaxUSD: value}
		}
	}
	return max, nil
}
