package fbar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLedgerFile is the default path of the accounts ledger.
const DefaultLedgerFile = "accounts.yaml"

// LoadLedger reads the accounts ledger from path. A missing file is an
// empty ledger: the first run creates it.
func LoadLedger(path string) ([]Account, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", path, err)
	}
	var accounts []Account
	if err := yaml.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("cannot parse ledger %q: %w", path, err)
	}
	return accounts, nil
}

// SaveLedger rewrites the whole accounts ledger. The same file is edited by
// hand between runs, so it is always rewritten in full, in the given order,
// never patched.
func SaveLedger(path string, accounts []Account) error {
	data, err := yaml.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write ledger %q: %w", path, err)
	}
	return nil
}
