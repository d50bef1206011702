package fbar

import (
	"slices"
	"testing"
)

func TestCurrencyPredicates(t *testing.T) {
	tests := []struct {
		currency     Currency
		needsEditing bool
		skip         bool
		symbol       string
		ok           bool
	}{
		{currency: "TODO", needsEditing: true},
		{currency: "todo", needsEditing: true},
		{currency: "Todo", needsEditing: true},
		{currency: "SKIP", skip: true},
		{currency: "skip", skip: true},
		{currency: "EUR", symbol: "EUR", ok: true},
		{currency: "eur", symbol: "EUR", ok: true},
		{currency: "JPY", symbol: "JPY", ok: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			if got := tt.currency.NeedsEditing(); got != tt.needsEditing {
				t.Errorf("NeedsEditing() = %v, want %v", got, tt.needsEditing)
			}
			if got := tt.currency.Skip(); got != tt.skip {
				t.Errorf("Skip() = %v, want %v", got, tt.skip)
			}
			symbol, ok := tt.currency.Symbol()
			if symbol != tt.symbol || ok != tt.ok {
				t.Errorf("Symbol() = (%q, %v), want (%q, %v)", symbol, ok, tt.symbol, tt.ok)
			}
		})
	}
}

func TestAccountCompare(t *testing.T) {
	accounts := []Account{
		{Institution: "Zeta Bank", Name: "Savings", ID: "3"},
		{Institution: "Alpha Bank", Name: "Checking", ID: "2"},
		{Institution: "Alpha Bank", Name: "Checking", ID: "1"},
		{Institution: "Alpha Bank", Name: "Brokerage", ID: "4"},
	}
	slices.SortFunc(accounts, Account.Compare)

	want := []string{"4", "1", "2", "3"}
	for i, a := range accounts {
		if a.ID != want[i] {
			t.Errorf("sorted[%d].ID = %s, want %s", i, a.ID, want[i])
		}
	}
}

func TestCurrencies(t *testing.T) {
	accounts := []Account{
		{ID: "1", Currency: "EUR"},
		{ID: "2", Currency: "eur"}, // same code, different case
		{ID: "3", Currency: "JPY"},
		{ID: "4", Currency: "SKIP"},
		{ID: "5", Currency: "TODO"},
	}
	got := Currencies(accounts)
	want := []string{"EUR", "JPY"}
	if !slices.Equal(got, want) {
		t.Errorf("Currencies() = %v, want %v", got, want)
	}
}
