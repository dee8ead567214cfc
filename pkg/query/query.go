// Package query applies optional field filters and pagination over a
// snapshot of the account collection, returning an order-preserving
// subsequence.
package query

import (
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getbankd/bankd/pkg/account"
)

// DefaultLimit is the page size used when a caller does not supply one.
const DefaultLimit = 10

// Spec is the transient filter + pagination value object for a list query.
// Each filter field is a case-sensitive substring match; the empty string
// imposes no constraint. Filters combine with logical AND.
type Spec struct {
	Start     int
	Limit     int
	LastName  string
	FirstName string
	Email     string
	Gender    string
	Address   string

	// Expr is an optional boolean expression evaluated against each
	// record's field map, ANDed with the substring filters.
	// Example: `balance > 20000 && state == "IL"`.
	Expr string
}

// DefaultSpec returns a Spec with the default page window and no filters.
func DefaultSpec() Spec {
	return Spec{Limit: DefaultLimit}
}

// Engine runs searches. It caches compiled Expr programs, so one Engine
// should be reused across requests.
type Engine struct {
	mu    sync.RWMutex
	cache map[string]*vm.Program
}

// NewEngine creates a query engine with an empty program cache.
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]*vm.Program)}
}

// Search filters accounts per spec, then slices out the requested page:
//
//	n <  start         -> empty
//	n <= start+limit   -> filtered[start:n)
//	otherwise          -> filtered[start:start+limit)
//
// where n is the filtered length. The input order is preserved; no sorting
// is performed. Negative start or limit is rejected with InvalidArgumentError.
func (e *Engine) Search(accounts []account.Account, spec Spec) ([]account.Account, error) {
	if spec.Start < 0 {
		return nil, &InvalidArgumentError{Param: "start", Message: "start must not be negative"}
	}
	if spec.Limit < 0 {
		return nil, &InvalidArgumentError{Param: "limit", Message: "limit must not be negative"}
	}

	filtered, err := e.applyFilters(accounts, spec)
	if err != nil {
		return nil, err
	}

	n := len(filtered)
	switch {
	case n < spec.Start:
		return []account.Account{}, nil
	case n <= spec.Start+spec.Limit:
		return filtered[spec.Start:n], nil
	default:
		return filtered[spec.Start : spec.Start+spec.Limit], nil
	}
}

func (e *Engine) applyFilters(accounts []account.Account, spec Spec) ([]account.Account, error) {
	var program *vm.Program
	if spec.Expr != "" {
		var err error
		program, err = e.compile(spec.Expr)
		if err != nil {
			return nil, &InvalidArgumentError{Param: "expr", Message: err.Error()}
		}
	}

	result := make([]account.Account, 0, len(accounts))
	for _, a := range accounts {
		if !matchesFilters(a, spec) {
			continue
		}
		if program != nil {
			keep, err := runPredicate(program, a)
			if err != nil {
				return nil, &InvalidArgumentError{Param: "expr", Message: err.Error()}
			}
			if !keep {
				continue
			}
		}
		result = append(result, a)
	}
	return result, nil
}

func matchesFilters(a account.Account, spec Spec) bool {
	if spec.LastName != "" && !strings.Contains(a.LastName, spec.LastName) {
		return false
	}
	if spec.FirstName != "" && !strings.Contains(a.FirstName, spec.FirstName) {
		return false
	}
	if spec.Address != "" && !strings.Contains(a.Address, spec.Address) {
		return false
	}
	if spec.Email != "" && !strings.Contains(a.Email, spec.Email) {
		return false
	}
	if spec.Gender != "" && !strings.Contains(a.Gender, spec.Gender) {
		return false
	}
	return true
}

// exprEnv exposes a record to the expression engine under its wire field
// names.
func exprEnv(a account.Account) map[string]any {
	return map[string]any{
		"account_number": a.AccountNumber,
		"balance":        a.Balance,
		"age":            a.Age,
		"firstname":      a.FirstName,
		"lastname":       a.LastName,
		"gender":         a.Gender,
		"address":        a.Address,
		"employer":       a.Employer,
		"email":          a.Email,
		"city":           a.City,
		"state":          a.State,
	}
}

func runPredicate(program *vm.Program, a account.Account) (bool, error) {
	out, err := expr.Run(program, exprEnv(a))
	if err != nil {
		return false, err
	}
	keep, ok := out.(bool)
	if !ok {
		return false, &InvalidArgumentError{Param: "expr", Message: "expression must evaluate to a boolean"}
	}
	return keep, nil
}

func (e *Engine) compile(expression string) (*vm.Program, error) {
	e.mu.RLock()
	if program, ok := e.cache[expression]; ok {
		e.mu.RUnlock()
		return program, nil
	}
	e.mu.RUnlock()

	program, err := expr.Compile(expression, expr.Env(exprEnv(account.Account{})))
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	// Another goroutine may have compiled the same expression meanwhile.
	if existing, ok := e.cache[expression]; ok {
		e.mu.Unlock()
		return existing, nil
	}
	e.cache[expression] = program
	e.mu.Unlock()

	return program, nil
}
