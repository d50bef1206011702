package monarch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The session token lives in a dot-directory next to the ledger, so the
// whole state of the tool travels with the working directory.
const (
	stateDir    = ".mm"
	sessionFile = "session"
)

func sessionPath() string { return filepath.Join(stateDir, sessionFile) }

// LoadSession returns the saved Monarch session token.
func LoadSession() (string, error) {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return "", fmt.Errorf("monarch session not found, run 'mfbar login' first: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveSession stores the Monarch session token for later runs.
func SaveSession(token string) error {
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return fmt.Errorf("cannot create state dir: %w", err)
	}
	if err := os.WriteFile(sessionPath(), []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("cannot save monarch session: %w", err)
	}
	return nil
}

// ClearSession removes the saved session token.
func ClearSession() error {
	err := os.Remove(sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
