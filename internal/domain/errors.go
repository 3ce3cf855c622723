package domain

import "errors"

var (
	// Amount errors
	ErrInvalidAmount = errors.New("amount must be positive")

	// Account errors
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrOverdraftExceeded  = errors.New("overdraft limit exceeded")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountClosed      = errors.New("account is closed")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidAccountKind = errors.New("invalid account kind")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Transfer errors
	ErrSameAccount      = errors.New("cannot transfer to same account")
	ErrTransferFailed   = errors.New("transfer failed")
	ErrTransferNotFound = errors.New("transfer not found")

	// Ledger errors
	ErrInvalidEntry = errors.New("invalid ledger entry")

	// ErrInvariantViolation marks corrupted state. It is only ever carried by a panic.
	ErrInvariantViolation = errors.New("invariant violation")
)
