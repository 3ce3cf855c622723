package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// OpenAccountRequest represents a request to open an account. Setting
// CustomerID attaches the account to an existing customer.
type OpenAccountRequest struct {
	CustomerID     string `json:"customer_id,omitempty"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Contact        string `json:"contact"`
	Address        string `json:"address"`
	CustomerType   string `json:"customer_type,omitempty"`
	Kind           string `json:"kind"`
	InitialDeposit string `json:"initial_deposit"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() (usecase.OpenAccountInput, error) {
	deposit, err := domain.ParseMoney(r.InitialDeposit)
	if err != nil {
		return usecase.OpenAccountInput{}, fmt.Errorf("initial_deposit: %w", err)
	}

	kind, err := domain.ParseAccountKind(r.Kind)
	if err != nil {
		return usecase.OpenAccountInput{}, err
	}

	var customerType domain.CustomerType
	if r.CustomerType != "" {
		customerType, err = domain.ParseCustomerType(r.CustomerType)
		if err != nil {
			return usecase.OpenAccountInput{}, err
		}
	}

	return usecase.OpenAccountInput{
		CustomerID:     r.CustomerID,
		Name:           r.Name,
		Age:            r.Age,
		Contact:        r.Contact,
		Address:        r.Address,
		CustomerType:   customerType,
		Kind:           kind,
		InitialDeposit: deposit,
	}, nil
}

// AmountRequest carries the amount of a deposit or withdrawal.
type AmountRequest struct {
	Amount string `json:"amount"`
}

// Decimal parses the amount.
func (r *AmountRequest) Decimal() (decimal.Decimal, error) {
	amount, err := domain.ParseMoney(r.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount: %w", err)
	}
	return amount, nil
}

// CreateTransferRequest represents a request to create a transfer.
type CreateTransferRequest struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      string `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() (usecase.CreateTransferInput, error) {
	amount, err := domain.ParseMoney(r.Amount)
	if err != nil {
		return usecase.CreateTransferInput{}, fmt.Errorf("amount: %w", err)
	}

	return usecase.CreateTransferInput{
		FromAccountID: r.FromAccount,
		ToAccountID:   r.ToAccount,
		Amount:        amount,
	}, nil
}
