// Package monarch talks to the Monarch Money API: session persistence,
// login, and the two read capabilities the tool needs, the account list and
// per-account daily balance history.
package monarch

import (
	"context"
	"net/http"

	fbar "github.com/vasi/monarch-fbar"
)

const (
	baseURL  = "https://api.monarchmoney.com"
	graphURL = baseURL + "/graphql"
	authURL  = baseURL + "/auth/login/"
)

// Client is an authenticated Monarch Money API client.
type Client struct {
	token  string
	client *http.Client
}

// NewClient returns a client using the given session token.
func NewClient(token string) *Client {
	return &Client{token: token, client: new(http.Client)}
}

// Open returns a client authenticated with the saved session token.
func Open() (*Client, error) {
	token, err := LoadSession()
	if err != nil {
		return nil, err
	}
	return NewClient(token), nil
}

// Probe verifies that the session is still authenticated by listing
// accounts once.
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.ListAccounts(ctx)
	return err
}

// gql performs one GraphQL operation against the Monarch API and
// unmarshals the response into out.
func (c *Client) gql(ctx context.Context, operation, query string, variables, out any) error {
	body := map[string]any{
		"operationName": operation,
		"query":         query,
		"variables":     variables,
	}
	header := make(http.Header)
	header.Set("Authorization", "Token "+c.token)
	header.Set("Client-Platform", "web")
	return fbar.PostJSON(ctx, c.client, graphURL, header, body, out)
}
