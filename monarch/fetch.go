package monarch

import (
	"context"
	"fmt"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	fbar "github.com/vasi/monarch-fbar"
	"github.com/vasi/monarch-fbar/date"
)

const accountsQuery = `query GetAccounts {
  accounts {
    id
    displayName
    isAsset
    type { name }
    institution { name }
  }
}`

// accountsResponse mirrors the GetAccounts payload.
type accountsResponse struct {
	Data struct {
		Accounts []struct {
			ID          string `json:"id"`
			DisplayName string `json:"displayName"`
			IsAsset     bool   `json:"isAsset"`
			Type        struct {
				Name string `json:"name"`
			} `json:"type"`
			Institution *struct {
				Name string `json:"name"`
			} `json:"institution"`
		} `json:"accounts"`
	} `json:"data"`
}

func (r *accountsResponse) accounts() []fbar.RemoteAccount {
	accounts := make([]fbar.RemoteAccount, 0, len(r.Data.Accounts))
	for _, a := range r.Data.Accounts {
		ra := fbar.RemoteAccount{
			ID:      a.ID,
			Name:    a.DisplayName,
			Type:    a.Type.Name,
			IsAsset: a.IsAsset,
		}
		if a.Institution != nil {
			ra.Institution = a.Institution.Name
		}
		accounts = append(accounts, ra)
	}
	return accounts
}

// ListAccounts implements fbar.AccountLister.
func (c *Client) ListAccounts(ctx context.Context) ([]fbar.RemoteAccount, error) {
	var out accountsResponse
	if err := c.gql(ctx, "GetAccounts", accountsQuery, map[string]any{}, &out); err != nil {
		return nil, fmt.Errorf("cannot fetch monarch accounts: %w", err)
	}
	return out.accounts(), nil
}

const historyQuery = `query AccountDetails_getAccountBalanceHistory($accountId: UUID!) {
  account(id: $accountId) {
    balanceHistory: dailyBalances {
      date
      balance
    }
  }
}`

// BalanceHistory implements fbar.BalanceHistorian.
func (c *Client) BalanceHistory(ctx context.Context, accountID string) ([]fbar.BalancePoint, error) {
	var jobj any
	vars := map[string]any{"accountId": accountID}
	if err := c.gql(ctx, "AccountDetails_getAccountBalanceHistory", historyQuery, vars, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch balance history of account %s: %w", accountID, err)
	}
	return parseBalanceHistory(jobj)
}

// parseBalanceHistory plucks the daily balances out of the payload. The
// history sits a few levels deep and its shape has moved between API
// revisions, so it is extracted with a json path rather than a rigid
// struct.
func parseBalanceHistory(jobj any) ([]fbar.BalancePoint, error) {
	jval, err := jsonpath.Get("$.data.account.balanceHistory[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot locate balance history in payload: %w", err)
	}
	entries, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("balance history is not a list: %T", jval)
	}

	points := make([]fbar.BalancePoint, 0, len(entries))
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("balance history entry is not an object: %T", e)
		}
		str, ok := m["date"].(string)
		if !ok {
			return nil, fmt.Errorf("balance history entry has no date: %v", m)
		}
		day, err := date.Parse(str)
		if err != nil {
			return nil, err
		}
		// balances arrive as json numbers or as decimal strings depending
		// on the API revision
		var balance decimal.Decimal
		switch b := m["balance"].(type) {
		case float64:
			balance = decimal.NewFromFloat(b)
		case string:
			balance, err = decimal.NewFromString(b)
			if err != nil {
				return nil, fmt.Errorf("invalid balance %q on %s: %w", b, day, err)
			}
		default:
			return nil, fmt.Errorf("invalid balance %v on %s", m["balance"], day)
		}
		points = append(points, fbar.BalancePoint{Date: day, Balance: balance})
	}

	// chronological order, the maximization tie-break relies on it
	slices.SortStableFunc(points, func(a, b fbar.BalancePoint) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	})
	return points, nil
}
