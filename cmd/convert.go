package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/vasi/monarch-fbar/date"
)

// convertCmd implements the "convert" command, a spot conversion through
// the same rate table the report uses. Handy to double-check a number.
type convertCmd struct {
	day      string
	currency string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount to USD at a given day's rate" }
func (*convertCmd) Usage() string {
	return `mfbar convert -d <date> -c <currency> <amount>

  Converts an amount to USD using the ECB reference rate of that day,
  through the EUR pivot, exactly as the report does.

Usage Examples:
$ mfbar convert -d 2023-06-01 -c JPY 1500000
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Date of the conversion (YYYY-MM-DD)")
	f.StringVar(&c.currency, "c", "EUR", "Currency code of the amount")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one amount is expected.")
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	rates, err := buildRates(day.Year(), []string{c.currency})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	value, err := rates.ToUSD(day, c.currency, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s %s on %s = %.2f USD\n", f.Arg(0), c.currency, day, value)
	return subcommands.ExitSuccess
}
