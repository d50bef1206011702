package fbar

import "strings"

// Sentinel values a user can leave in the currency field of the ledger.
const (
	// CurrencyTODO marks an account the user has not classified yet.
	CurrencyTODO = "TODO"
	// CurrencySkip marks an account the user opted out of reporting.
	CurrencySkip = "SKIP"
)

// InstitutionUnknown is recorded when the provider has no institution for an account.
const InstitutionUnknown = "UNKNOWN"

// Currency is either an ISO-style currency code or one of the sentinel
// values above. Sentinels are matched case-insensitively, the file is
// edited by hand.
type Currency string

// NeedsEditing reports whether the user still has to classify this account.
func (c Currency) NeedsEditing() bool { return strings.EqualFold(string(c), CurrencyTODO) }

// Skip reports whether the user opted this account out of reporting.
func (c Currency) Skip() bool { return strings.EqualFold(string(c), CurrencySkip) }

// Symbol returns the currency code normalized to uppercase.
// ok is false when the account is skipped or still needs editing.
func (c Currency) Symbol() (code string, ok bool) {
	if c.NeedsEditing() || c.Skip() {
		return "", false
	}
	return strings.ToUpper(string(c)), true
}

// Account is one trackable account of the ledger.
//
// The field order is the persisted order, institution first because that is
// how the FBAR form is organized. The id is assigned by the provider and
// immutable; everything else belongs to the user once written.
type Account struct {
	Institution string   `yaml:"institution"`
	Name        string   `yaml:"name"`
	ID          string   `yaml:"id"`
	Currency    Currency `yaml:"currency"`
}

// Currencies returns the distinct currency codes assigned to the given
// accounts, ignoring unclassified and skipped entries.
func Currencies(accounts []Account) []string {
	seen := make(map[string]bool)
	codes := make([]string, 0, len(accounts))
	for _, a := range accounts {
		code, ok := a.Currency.Symbol()
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

// Compare orders accounts by (institution, name, id), the canonical
// ordering used when the ledger file is first created.
func (a Account) Compare(b Account) int {
	if c := strings.Compare(a.Institution, b.Institution); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}
