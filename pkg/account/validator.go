package account

import "regexp"

// emailPattern accepts a local part of the usual atom characters followed by
// one or more dot-separated domain labels. Intentionally simpler than full
// RFC 5322.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")

// Validate checks a candidate account against the business rules, in order,
// first failure wins:
//
//  1. no existing account may carry the same account number under a
//     different id (for creates the candidate id is empty, so any match
//     fails),
//  2. age must be positive,
//  3. balance must be positive,
//  4. email must match the simple email shape.
//
// Validation never mutates anything; it must run strictly before a store
// mutation so a failed create/update leaves no partial state behind.
func Validate(candidate Account, existing []Account) error {
	for _, other := range existing {
		if other.AccountNumber == candidate.AccountNumber && other.ID != candidate.ID {
			return &ConflictError{AccountNumber: candidate.AccountNumber}
		}
	}
	if candidate.Age <= 0 {
		return &ValidationError{Field: "age", Message: "age must be greater than 0"}
	}
	if candidate.Balance <= 0 {
		return &ValidationError{Field: "balance", Message: "balance must be greater than 0"}
	}
	if !emailPattern.MatchString(candidate.Email) {
		return &ValidationError{Field: "email", Message: "email is in the wrong format"}
	}
	return nil
}
