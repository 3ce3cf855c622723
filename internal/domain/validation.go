package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCustomerName  = errors.New("invalid customer name")
	ErrInvalidCustomerAge   = errors.New("invalid customer age")
	ErrInvalidContact       = errors.New("invalid customer contact")
	ErrInvalidAddress       = errors.New("invalid customer address")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrAmountTooLarge       = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MinCustomerAge        = 18
	MaxCustomerAge        = 120
	MaxCustomerNameLength = 100
	MaxAmount             = "1000000000" // 1 billion
)

var (
	accountNumberRegex = regexp.MustCompile(`^ACC\d{3,}$`)
	contactRegex       = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,19}$`)
	maxAmount          = decimal.RequireFromString(MaxAmount)
)

// ValidateAmount checks that amount is a positive value exact to the cent.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	if !amount.Equal(amount.Round(MoneyScale)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, MoneyScale)
	}

	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidateAccountNumber checks the ACC-prefixed account number format.
func ValidateAccountNumber(number string) error {
	if !accountNumberRegex.MatchString(number) {
		return fmt.Errorf("%w: %q", ErrInvalidAccountNumber, number)
	}
	return nil
}

// ValidateCustomerName validates a customer name.
func ValidateCustomerName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCustomerName)
	}

	if len(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCustomerName, MaxCustomerNameLength)
	}

	// Pipes would corrupt the persisted line format.
	if strings.ContainsAny(name, "|\n\r") {
		return fmt.Errorf("%w: contains forbidden characters", ErrInvalidCustomerName)
	}

	return nil
}

// ValidateCustomerAge validates a customer age.
func ValidateCustomerAge(age int) error {
	if age < MinCustomerAge || age > MaxCustomerAge {
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidCustomerAge, MinCustomerAge, MaxCustomerAge)
	}
	return nil
}

// ValidateContact validates a phone-like contact string.
func ValidateContact(contact string) error {
	if !contactRegex.MatchString(strings.TrimSpace(contact)) {
		return fmt.Errorf("%w: %q", ErrInvalidContact, contact)
	}
	return nil
}

// ValidateAddress validates a postal address.
func ValidateAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("%w: address cannot be empty", ErrInvalidAddress)
	}
	if strings.ContainsAny(address, "|\n\r") {
		return fmt.Errorf("%w: contains forbidden characters", ErrInvalidAddress)
	}
	return nil
}
