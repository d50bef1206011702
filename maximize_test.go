package fbar

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vasi/monarch-fbar/date"
)

// fakeHistorian is a canned BalanceHistorian.
type fakeHistorian struct {
	history map[string][]BalancePoint
	err     map[string]error
}

func (f *fakeHistorian) BalanceHistory(ctx context.Context, accountID string) ([]BalancePoint, error) {
	if err := f.err[accountID]; err != nil {
		return nil, err
	}
	return f.history[accountID], nil
}

func point(day string, balance int64) BalancePoint {
	return BalancePoint{Date: date.MustParse(day), Balance: decimal.NewFromInt(balance)}
}

func testRates(t *testing.T, currencies []string) *Rates {
	t.Helper()
	csv := ratesCSV(
		"2023-12-29,1.10,2.0",
		"2023-06-01,1.10,2.0",
		"2023-01-15,1.05,2.0",
		"2023-01-02,1.05,2.0",
	)
	rates, err := NewRates(strings.NewReader(csv), 2023, currencies)
	if err != nil {
		t.Fatalf("NewRates: %v", err)
	}
	return rates
}

func TestMaximize(t *testing.T) {
	account := Account{Institution: "Bank", Name: "Savings", ID: "1", Currency: "EUR"}
	hist := &fakeHistorian{history: map[string][]BalancePoint{
		"1": {point("2023-01-15", 100), point("2023-06-01", 250)},
	}}
	rates := testRates(t, nil)

	maxes, err := MaximizeAll(context.Background(), hist, rates, 2023, []Account{account})
	if err != nil {
		t.Fatalf("MaximizeAll: %v", err)
	}
	if len(maxes) != 1 {
		t.Fatalf("got %d results, want 1", len(maxes))
	}

	m := maxes[0]
	// 250 EUR on June 1 at 1.10 beats 100 EUR on January 15 at 1.05.
	if !m.HasActivity() {
		t.Fatal("HasActivity() = false")
	}
	if want := date.New(2023, time.June, 1); m.Date != want {
		t.Errorf("Date = %s, want %s", m.Date, want)
	}
	if !m.MaxLocal.Equal(decimal.NewFromInt(250)) {
		t.Errorf("MaxLocal = %s, want 250", m.MaxLocal)
	}
	if math.Abs(m.MaxUSD-275) > 1e-9 {
		t.Errorf("MaxUSD = %v, want 275", m.MaxUSD)
	}
}

func TestMaximizeIgnoresOtherYears(t *testing.T) {
	account := Account{Name: "Savings", ID: "1", Currency: "EUR"}
	hist := &fakeHistorian{history: map[string][]BalancePoint{
		"1": {
			point("2022-06-01", 1000000), // a fortune, but the wrong year
			point("2023-01-15", 100),
			point("2024-01-01", 1000000),
		},
	}}

	maxes, err := MaximizeAll(context.Background(), hist, testRates(t, nil), 2023, []Account{account})
	if err != nil {
		t.Fatalf("MaximizeAll: %v", err)
	}
	if want := date.New(2023, time.January, 15); maxes[0].Date != want {
		t.Errorf("Date = %s, want %s", maxes[0].Date, want)
	}
}

func TestMaximizeNoActivity(t *testing.T) {
	account := Account{Name: "Dormant", ID: "1", Currency: "EUR"}
	hist := &fakeHistorian{}

	maxes, err := MaximizeAll(context.Background(), hist, testRates(t, nil), 2023, []Account{account})
	if err != nil {
		t.Fatalf("MaximizeAll: %v", err)
	}
	m := maxes[0]
	if m.HasActivity() {
		t.Error("HasActivity() = true for empty history")
	}
	if !m.Date.IsZero() {
		t.Errorf("Date = %s, want zero", m.Date)
	}
	if !math.IsInf(m.MaxUSD, -1) {
		t.Errorf("MaxUSD = %v, want -Inf", m.MaxUSD)
	}
}

func TestMaximizeEarliestPeakWins(t *testing.T) {
	account := Account{Name: "Flat", ID: "1", Currency: "EUR"}
	// same balance all year, same rate on both days
	hist := &fakeHistorian{history: map[string][]BalancePoint{
		"1": {point("2023-06-01", 500), point("2023-06-02", 500)},
	}}

	maxes, err := MaximizeAll(context.Background(), hist, testRates(t, nil), 2023, []Account{account})
	if err != nil {
		t.Fatalf("MaximizeAll: %v", err)
	}
	if want := date.New(2023, time.June, 1); maxes[0].Date != want {
		t.Errorf("Date = %s, want %s", maxes[0].Date, want)
	}
}

func TestMaximizeAllKeepsOrder(t *testing.T) {
	accounts := []Account{
		{Name: "a", ID: "a", Currency: "EUR"},
		{Name: "b", ID: "b", Currency: "CHF"},
		{Name: "c", ID: "c", Currency: "EUR"},
	}
	hist := &fakeHistorian{history: map[string][]BalancePoint{
		"a": {point("2023-03-01", 1)},
		"b": {point("2023-03-01", 2)},
		"c": {point("2023-03-01", 3)},
	}}

	maxes, err := MaximizeAll(context.Background(), hist, testRates(t, []string{"CHF"}), 2023, accounts)
	if err != nil {
		t.Fatalf("MaximizeAll: %v", err)
	}
	for i, account := range accounts {
		if maxes[i].Account.ID != account.ID {
			t.Errorf("maxes[%d] is account %q, want %q", i, maxes[i].Account.ID, account.ID)
		}
	}
}

func TestMaximizeAllFailsWhole(t *testing.T) {
	accounts := []Account{
		{Name: "good", ID: "good", Currency: "EUR"},
		{Name: "bad", ID: "bad", Currency: "EUR"},
	}
	boom := errors.New("history endpoint exploded")
	hist := &fakeHistorian{
		history: map[string][]BalancePoint{"good": {point("2023-03-01", 1)}},
		err:     map[string]error{"bad": boom},
	}

	maxes, err := MaximizeAll(context.Background(), hist, testRates(t, nil), 2023, accounts)
	if !errors.Is(err, boom) {
		t.Fatalf("MaximizeAll = %v, want wrapped %v", err, boom)
	}
	if maxes != nil {
		t.Errorf("maxes = %v, want nil on failure", maxes)
	}
}

func TestMaximizeUnclassifiedCurrency(t *testing.T) {
	account := Account{Name: "pending", ID: "1", Currency: CurrencyTODO}
	hist := &fakeHistorian{history: map[string][]BalancePoint{
		"1": {point("2023-03-01", 1)},
	}}

	_, err := MaximizeAll(context.Background(), hist, testRates(t, nil), 2023, []Account{account})
	if err == nil {
		t.Fatal("MaximizeAll accepted an unclassified account")
	}
}
