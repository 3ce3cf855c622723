package domain

import (
	"fmt"
	"strings"
)

// CustomerType distinguishes fee treatment.
type CustomerType string

const (
	CustomerTypeRegular CustomerType = "Regular"
	CustomerTypePremium CustomerType = "Premium"
)

// ParseCustomerType accepts the persisted or user-supplied customer type.
func ParseCustomerType(s string) (CustomerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular":
		return CustomerTypeRegular, nil
	case "premium":
		return CustomerTypePremium, nil
	default:
		return "", fmt.Errorf("unknown customer type %q", s)
	}
}

// Customer owns one or more accounts. Accounts only hold a read-only pointer.
type Customer struct {
	ID      string
	Name    string
	Age     int
	Contact string
	Address string
	Type    CustomerType
}

// WaivesFees reports whether monthly account fees are waived.
func (c *Customer) WaivesFees() bool {
	return c.Type == CustomerTypePremium
}

// Validate checks every customer field.
func (c *Customer) Validate() error {
	if err := ValidateCustomerName(c.Name); err != nil {
		return err
	}
	if err := ValidateCustomerAge(c.Age); err != nil {
		return err
	}
	if err := ValidateContact(c.Contact); err != nil {
		return err
	}
	if err := ValidateAddress(c.Address); err != nil {
		return err
	}
	if _, err := ParseCustomerType(string(c.Type)); err != nil {
		return err
	}
	return nil
}
