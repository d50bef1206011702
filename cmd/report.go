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
	"github.com/vasi/monarch-fbar/renderer"
)

// reportCmd implements the "report" command, the full pipeline.
type reportCmd struct {
	raw bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "compute the maximum USD balance each account reached in the year"
}
func (*reportCmd) Usage() string {
	return `mfbar report [-year <year>] [-raw]

  Reconciles the accounts ledger against Monarch Money, then computes for
  every tracked account the date and value of its maximum USD-equivalent
  balance during the target year, and renders the report.

  Stops with guidance when the ledger still has accounts marked TODO.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := monarch.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	working, err := fbar.Reconcile(ctx, client, *ledgerFile)
	var incomplete *fbar.ErrLedgerIncomplete
	if errors.As(err, &incomplete) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", incomplete)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not reconcile accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(working) == 0 {
		fmt.Fprintf(os.Stderr, "No accounts to report on: the whole ledger is marked %s.\n", fbar.CurrencySkip)
		return subcommands.ExitSuccess
	}

	rates, err := buildRates(*yearFlag, fbar.Currencies(working))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	maxes, err := fbar.MaximizeAll(ctx, client, rates, *yearFlag, working)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.ReportMarkdown(*yearFlag, maxes)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
