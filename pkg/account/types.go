// Package account defines the record types managed by the simulated
// account-management backend and the business-rule validation applied to
// them before create/update operations are committed.
package account

// Account is a bank-account-like record with identity, balance, and
// demographic fields. The JSON tags are the wire format of the API; ID is
// assigned by the store and immutable after creation.
type Account struct {
	ID            string `json:"_id"`
	AccountNumber string `json:"account_number"`
	Balance       int    `json:"balance"`
	Age           int    `json:"age"`
	FirstName     string `json:"firstname"`
	LastName      string `json:"lastname"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	Employer      string `json:"employer"`
	Email         string `json:"email"`
	City          string `json:"city"`
	State         string `json:"state"`
}

// User is a registered user able to log in to the UI. IDs are assigned
// sequentially by the store. Users are never updated or deleted.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
