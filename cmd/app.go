// Package cmd implements the mfbar CLI application.
package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	fbar "github.com/vasi/monarch-fbar"
	"github.com/vasi/monarch-fbar/ecb"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", fbar.DefaultLedgerFile, "Path to the accounts ledger file (YAML)")
var yearFlag = flag.Int("year", time.Now().Year()-1, "Target calendar year; defaults to the last full year, the one being filed")

// Commands lists the subcommands for the main package to register.
var Commands = []subcommands.Command{
	&loginCmd{},
	&accountsCmd{},
	&reportCmd{},
	&convertCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// buildRates downloads the ECB dataset and builds the rate table for the
// given year and currencies.
func buildRates(year int, currencies []string) (*fbar.Rates, error) {
	csvdata, err := ecb.FetchHistory()
	if err != nil {
		return nil, err
	}
	return fbar.NewRates(bytes.NewReader(csvdata), year, currencies)
}
