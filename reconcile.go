package fbar

import (
	"context"
	"fmt"
	"slices"
)

// Reconcile merges the remotely discovered accounts into the persisted
// ledger at path and returns the working set of accounts to report on.
//
// User edits always win: an entry already in the ledger is never modified
// by remote data, and entries whose id is gone remotely are kept (removal
// is the user's call). New asset-bearing remote accounts are appended with
// currency TODO; liabilities and other non-asset accounts are ignored.
//
// If any entry still needs editing, the merged ledger is written back and
// Reconcile returns ErrLedgerIncomplete: nothing may be computed until the
// user classifies every account. The merged set is sorted canonically only
// when the ledger did not exist before; afterwards the user's manual
// ordering is preserved and new entries go to the end.
func Reconcile(ctx context.Context, lister AccountLister, path string) ([]Account, error) {
	remote, err := lister.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list remote accounts: %w", err)
	}

	persisted, err := LoadLedger(path)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(persisted))
	for _, a := range persisted {
		known[a.ID] = true
	}

	merged := slices.Clone(persisted)
	for _, r := range remote {
		if !r.IsAsset || known[r.ID] {
			continue
		}
		institution := r.Institution
		if institution == "" {
			institution = InstitutionUnknown
		}
		merged = append(merged, Account{
			Institution: institution,
			Name:        r.Name,
			ID:          r.ID,
			Currency:    CurrencyTODO,
		})
	}

	if slices.ContainsFunc(merged, func(a Account) bool { return a.Currency.NeedsEditing() }) {
		if len(persisted) == 0 {
			// First run: there is no user ordering to preserve yet.
			slices.SortFunc(merged, Account.Compare)
		}
		if err := SaveLedger(path, merged); err != nil {
			return nil, err
		}
		return nil, &ErrLedgerIncomplete{Path: path}
	}

	// Fully classified: the working set is the persisted ledger as the user
	// wrote it, minus the accounts the user skips.
	working := make([]Account, 0, len(persisted))
	for _, a := range persisted {
		if !a.Currency.Skip() {
			working = append(working, a)
		}
	}
	return working, nil
}
