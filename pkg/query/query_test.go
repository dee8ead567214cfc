package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getbankd/bankd/pkg/account"
)

// makeAccounts builds n accounts with predictable ids and ascending
// balances so slices can be checked positionally.
func makeAccounts(n int) []account.Account {
	accounts := make([]account.Account, 0, n)
	for i := 0; i < n; i++ {
		accounts = append(accounts, account.Account{
			ID:            fmt.Sprintf("id-%02d", i),
			AccountNumber: fmt.Sprintf("%04d", 1000+i),
			Balance:       (i + 1) * 100,
			Age:           20 + i%40,
			LastName:      fmt.Sprintf("Last%02d", i),
			Email:         fmt.Sprintf("user%02d@example.com", i),
		})
	}
	return accounts
}

func TestSearchNoFilters(t *testing.T) {
	engine := NewEngine()
	accounts := makeAccounts(5)

	got, err := engine.Search(accounts, DefaultSpec())
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestSearchSubstringFilter(t *testing.T) {
	engine := NewEngine()
	accounts := []account.Account{
		{ID: "1", LastName: "Smith", FirstName: "Anna"},
		{ID: "2", LastName: "Jones", FirstName: "Ben"},
		{ID: "3", LastName: "Smithson", FirstName: "Cara"},
	}

	got, err := engine.Search(accounts, Spec{Limit: 10, LastName: "Smith"})
	require.NoError(t, err)
	require.Len(t, got, 2, "substring match should include Smithson")
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	// Case-sensitive: lowercase does not match.
	got, err = engine.Search(accounts, Spec{Limit: 10, LastName: "smith"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchFiltersCombineWithAND(t *testing.T) {
	engine := NewEngine()
	accounts := []account.Account{
		{ID: "1", LastName: "Smith", Gender: "F"},
		{ID: "2", LastName: "Smith", Gender: "M"},
		{ID: "3", LastName: "Jones", Gender: "F"},
	}

	got, err := engine.Search(accounts, Spec{Limit: 10, LastName: "Smith", Gender: "F"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSearchPagination(t *testing.T) {
	engine := NewEngine()
	accounts := makeAccounts(25)

	tests := []struct {
		name     string
		start    int
		limit    int
		wantLen  int
		firstIdx int
	}{
		{"first page", 0, 10, 10, 0},
		{"middle page", 10, 10, 10, 10},
		{"tail shorter than limit", 20, 10, 5, 20},
		{"start equals count", 25, 10, 0, 0},
		{"start beyond count", 30, 10, 0, 0},
		{"zero limit", 0, 0, 0, 0},
		{"zero limit nonzero start", 5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Search(accounts, Spec{Start: tt.start, Limit: tt.limit})
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			for i, a := range got {
				assert.Equal(t, accounts[tt.firstIdx+i].ID, a.ID, "result must be a contiguous slice")
			}
		})
	}
}

func TestSearchResultNeverExceedsLimit(t *testing.T) {
	engine := NewEngine()
	accounts := makeAccounts(40)

	for start := 0; start <= 45; start += 5 {
		for limit := 0; limit <= 15; limit += 5 {
			got, err := engine.Search(accounts, Spec{Start: start, Limit: limit})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(got), limit, "start=%d limit=%d", start, limit)
		}
	}
}

func TestSearchNegativeArguments(t *testing.T) {
	engine := NewEngine()
	accounts := makeAccounts(3)

	_, err := engine.Search(accounts, Spec{Start: -1, Limit: 10})
	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "start", invalid.Param)

	_, err = engine.Search(accounts, Spec{Start: 0, Limit: -5})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "limit", invalid.Param)
}

func TestSearchExprPredicate(t *testing.T) {
	engine := NewEngine()
	accounts := makeAccounts(10) // balances 100..1000

	got, err := engine.Search(accounts, Spec{Limit: 10, Expr: "balance > 700"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 800, got[0].Balance)

	// Expression ANDs with the substring filters.
	got, err = engine.Search(accounts, Spec{Limit: 10, LastName: "Last09", Expr: "balance > 700"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "id-09", got[0].ID)
}

func TestSearchExprErrors(t *testing.T) {
	engine := NewEngine()
	accounts := makeAccounts(3)

	var invalid *InvalidArgumentError

	_, err := engine.Search(accounts, Spec{Limit: 10, Expr: "balance >"})
	require.ErrorAs(t, err, &invalid, "unparsable expression")

	_, err = engine.Search(accounts, Spec{Limit: 10, Expr: "balance + 1"})
	require.ErrorAs(t, err, &invalid, "non-boolean expression")
}

func TestSearchReusesCompiledPrograms(t *testing.T) {
	engine := NewEngine()
	accounts := makeAccounts(3)

	for i := 0; i < 3; i++ {
		_, err := engine.Search(accounts, Spec{Limit: 10, Expr: "age > 0"})
		require.NoError(t, err)
	}
	engine.mu.RLock()
	defer engine.mu.RUnlock()
	assert.Len(t, engine.cache, 1)
}

func TestDefaultSpec(t *testing.T) {
	spec := DefaultSpec()
	assert.Equal(t, 0, spec.Start)
	assert.Equal(t, DefaultLimit, spec.Limit)
}
