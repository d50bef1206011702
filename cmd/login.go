package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/vasi/monarch-fbar/monarch"
	"gopkg.in/yaml.v3"
)

// loginCmd implements the "login" command: authenticate against Monarch
// Money and store the session token for the other commands.
type loginCmd struct {
	creds string
	fresh bool
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in to Monarch Money and store the session" }
func (*loginCmd) Usage() string {
	return `mfbar login [-creds <file>] [-fresh]

  Logs in to Monarch Money and stores the session token in .mm/session.
  With no flags, reuses a still-valid saved session, otherwise prompts for
  email, password and, when required, a multi-factor code.

  -creds points to a YAML file with "email" and "password" keys to skip
  the prompts.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.creds, "creds", "", "YAML file with email and password")
	f.BoolVar(&c.fresh, "fresh", false, "ignore any saved session and log in again")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.fresh {
		if client, err := monarch.Open(); err == nil {
			if err := client.Probe(ctx); err == nil {
				fmt.Println("Saved session is still valid.")
				return subcommands.ExitSuccess
			}
		}
	}

	email, password, err := c.credentials()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	token, err := monarch.Login(ctx, email, password, "")
	if errors.Is(err, monarch.ErrMFARequired) {
		code := prompt("MFA code: ")
		token, err = monarch.Login(ctx, email, password, code)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := monarch.SaveSession(token); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// verify before claiming success
	client := monarch.NewClient(token)
	if err := client.Probe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: session stored but not usable: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Logged in, session stored.")
	return subcommands.ExitSuccess
}

// credentials returns the email and password, from the creds file when
// given, prompting otherwise.
func (c *loginCmd) credentials() (email, password string, err error) {
	if c.creds == "" {
		return prompt("Email: "), prompt("Password: "), nil
	}
	data, err := os.ReadFile(c.creds)
	if err != nil {
		return "", "", fmt.Errorf("cannot read credentials file: %w", err)
	}
	var creds struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	}
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return "", "", fmt.Errorf("cannot parse credentials file %q: %w", c.creds, err)
	}
	if creds.Email == "" || creds.Password == "" {
		return "", "", fmt.Errorf("credentials file %q needs both email and password", c.creds)
	}
	return creds.Email, creds.Password, nil
}

func prompt(label string) string {
	fmt.Print(label)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
