package fbar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vasi/monarch-fbar/date"
)

// ErrLedgerIncomplete reports that the ledger still contains accounts the
// user has to classify. The run stops here: edit the file and rerun.
type ErrLedgerIncomplete struct{ Path string }

func (e *ErrLedgerIncomplete) Error() string {
	return fmt.Sprintf("ledger %s has accounts marked %s: assign a currency (or %s) to each and rerun", e.Path, CurrencyTODO, CurrencySkip)
}

// ErrStaleRates reports that the rate dataset has no row late enough in the
// target year. The publisher lags a few days behind; nothing to do but wait.
type ErrStaleRates struct{ Year int }

func (e *ErrStaleRates) Error() string {
	return fmt.Sprintf("exchange rate data for year %d is not complete yet", e.Year)
}

// ErrMissingCurrencies reports required currencies that the rate dataset
// has no value for on a row inside the parsing window.
type ErrMissingCurrencies struct{ Currencies []string }

func (e *ErrMissingCurrencies) Error() string {
	cs := slices.Clone(e.Currencies)
	slices.Sort(cs)
	return fmt.Sprintf("exchange rate data does not include currencies %s", strings.Join(cs, ", "))
}

// ErrNoRate reports a rate lookup outside the built table. After a
// successful construction this indicates a defect, not bad user input.
type ErrNoRate struct {
	Day      date.Date
	Currency string // empty when the whole day is missing
}

func (e *ErrNoRate) Error() string {
	if e.Currency == "" {
		return fmt.Sprintf("no exchange rates for %s", e.Day)
	}
	return fmt.Sprintf("no %s exchange rate for %s", e.Currency, e.Day)
}
