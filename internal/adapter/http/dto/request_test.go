package dto

import (
	"errors"
	"testing"

	"github.com/iho/gobank/internal/domain"
)

func TestOpenAccountRequest_ToUseCaseInput(t *testing.T) {
	req := &OpenAccountRequest{
		Name:           "Ada Lovelace",
		Age:            36,
		Contact:        "+44 20 7946 0000",
		Address:        "London",
		CustomerType:   "premium",
		Kind:           "savings",
		InitialDeposit: "750.50",
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Kind != domain.AccountKindSavings || got.CustomerType != domain.CustomerTypePremium {
		t.Fatalf("unexpected kind or type: %+v", got)
	}
	if domain.FormatMoney(got.InitialDeposit) != "750.50" {
		t.Fatalf("unexpected deposit %s", got.InitialDeposit)
	}
	if got.Name != req.Name || got.Age != req.Age {
		t.Fatalf("customer fields not copied: %+v", got)
	}
}

func TestOpenAccountRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  OpenAccountRequest
		want error
	}{
		{"bad deposit", OpenAccountRequest{Kind: "checking", InitialDeposit: "ten"}, domain.ErrInvalidAmount},
		{"sub-cent deposit", OpenAccountRequest{Kind: "checking", InitialDeposit: "1.001"}, domain.ErrInvalidAmount},
		{"bad kind", OpenAccountRequest{Kind: "brokerage", InitialDeposit: "10"}, domain.ErrInvalidAccountKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToUseCaseInput()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateTransferRequest_ToUseCaseInput(t *testing.T) {
	tests := []struct {
		name        string
		request     *CreateTransferRequest
		wantAmount  string
		expectError bool
	}{
		{
			name:       "valid amount",
			request:    &CreateTransferRequest{FromAccount: "ACC001", ToAccount: "ACC002", Amount: "12.34"},
			wantAmount: "12.34",
		},
		{
			name:        "invalid amount",
			request:     &CreateTransferRequest{FromAccount: "ACC001", ToAccount: "ACC002", Amount: "abc"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.FromAccountID != "ACC001" || got.ToAccountID != "ACC002" || domain.FormatMoney(got.Amount) != tt.wantAmount {
				t.Fatalf("unexpected input: %+v", got)
			}
		})
	}
}

func TestAmountRequest_Decimal(t *testing.T) {
	if _, err := (&AmountRequest{Amount: ""}).Decimal(); err == nil {
		t.Fatalf("expected error for empty amount")
	}

	d, err := (&AmountRequest{Amount: " 99.90 "}).Decimal()
	if err != nil || domain.FormatMoney(d) != "99.90" {
		t.Fatalf("unexpected result %s, %v", d, err)
	}
}
