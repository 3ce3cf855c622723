package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	if err := ValidateAmount(MustMoney("100.25")); err != nil {
		t.Fatalf("expected valid amount, got %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}

	if err := ValidateAmount(decimal.RequireFromString("0.001")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for sub-cent amount, got %v", err)
	}

	huge := decimal.RequireFromString(MaxAmount).Add(decimal.NewFromInt(1))
	if err := ValidateAmount(huge); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestParseMoney(t *testing.T) {
	t.Parallel()

	d, err := ParseMoney(" 12.50 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatMoney(d) != "12.50" {
		t.Fatalf("expected 12.50, got %s", FormatMoney(d))
	}

	if _, err := ParseMoney("12.505"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	if _, err := ParseMoney("twelve"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	// 0.1 + 0.2 is exact.
	sum := MustMoney("0.10").Add(MustMoney("0.20"))
	if !sum.Equal(MustMoney("0.30")) {
		t.Fatalf("expected 0.30, got %s", sum)
	}
}

func TestValidateAccountNumber(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"ACC001", "ACC1234"} {
		if err := ValidateAccountNumber(ok); err != nil {
			t.Fatalf("expected %s to be valid, got %v", ok, err)
		}
	}

	for _, bad := range []string{"", "acc001", "ACC01", "ACCX01"} {
		if err := ValidateAccountNumber(bad); !errors.Is(err, ErrInvalidAccountNumber) {
			t.Fatalf("expected ErrInvalidAccountNumber for %q, got %v", bad, err)
		}
	}
}

func TestCustomerValidate(t *testing.T) {
	t.Parallel()

	valid := Customer{Name: "Grace Hopper", Age: 45, Contact: "+233 24 123 4567", Address: "1 Navy Yard", Type: CustomerTypePremium}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid customer, got %v", err)
	}

	t.Run("empty name rejected", func(t *testing.T) {
		c := valid
		c.Name = "   "
		if err := c.Validate(); !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		c := valid
		c.Name = strings.Repeat("a", MaxCustomerNameLength+1)
		if err := c.Validate(); !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("pipe in name", func(t *testing.T) {
		c := valid
		c.Name = "a|b"
		if err := c.Validate(); !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("underage", func(t *testing.T) {
		c := valid
		c.Age = 17
		if err := c.Validate(); !errors.Is(err, ErrInvalidCustomerAge) {
			t.Fatalf("expected ErrInvalidCustomerAge, got %v", err)
		}
	})

	t.Run("bad contact", func(t *testing.T) {
		c := valid
		c.Contact = "call me"
		if err := c.Validate(); !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	t.Run("empty address", func(t *testing.T) {
		c := valid
		c.Address = ""
		if err := c.Validate(); !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("expected ErrInvalidAddress, got %v", err)
		}
	})
}

func TestEntryKinds(t *testing.T) {
	t.Parallel()

	kind, err := ParseEntryKind("transfer OUT")
	if err != nil || kind != EntryKindTransferOut {
		t.Fatalf("expected Transfer Out, got %q err=%v", kind, err)
	}

	if kind, err := ParseEntryKind("transfer_in"); err != nil || kind != EntryKindTransferIn {
		t.Fatalf("expected Transfer In, got %q err=%v", kind, err)
	}

	if _, err := ParseEntryKind("bonus"); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}

	e := Entry{Kind: EntryKindWithdrawal, Amount: MustMoney("5.00")}
	if !e.SignedAmount().Equal(MustMoney("-5.00")) {
		t.Fatalf("expected -5.00, got %s", e.SignedAmount())
	}

	seq, err := ParseEntryID(EntryID(42))
	if err != nil || seq != 42 {
		t.Fatalf("expected 42, got %d err=%v", seq, err)
	}
}
