package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	fbar "github.com/vasi/monarch-fbar"
	"github.com/vasi/monarch-fbar/monarch"
)

// accountsCmd implements the "accounts" command: reconcile the ledger
// without computing anything.
type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "sync the accounts ledger with Monarch Money" }
func (*accountsCmd) Usage() string {
	return `mfbar accounts

  Fetches the account list from Monarch Money and merges newly discovered
  asset accounts into the ledger file, marked TODO. Existing entries are
  never modified; edit the file to classify or remove accounts.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := monarch.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	working, err := fbar.Reconcile(ctx, client, *ledgerFile)
	var incomplete *fbar.ErrLedgerIncomplete
	if errors.As(err, &incomplete) {
		// Expected outcome of a sync: the file now has entries to classify.
		fmt.Printf("Ledger written to %s.\n", incomplete.Path)
		fmt.Printf("Assign a currency (or %s) to every account marked %s, then rerun.\n", fbar.CurrencySkip, fbar.CurrencyTODO)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not reconcile accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Ledger %s is fully classified, %d account(s) to report on:\n", *ledgerFile, len(working))
	for _, a := range working {
		code, _ := a.Currency.Symbol()
		fmt.Printf("  %s: %s (%s)\n", a.Institution, a.Name, code)
	}
	return subcommands.ExitSuccess
}
