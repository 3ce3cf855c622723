package file

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

func TestEncodeEntry(t *testing.T) {
	e := domain.Entry{
		ID:               "TXN007",
		Seq:              7,
		AccountNumber:    "ACC001",
		Kind:             domain.EntryKindTransferOut,
		Amount:           domain.MustMoney("250"),
		ResultingBalance: domain.MustMoney("-500.5"),
		CreatedAt:        time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local),
	}

	assert.Equal(t, "TXN007|ACC001|Transfer Out|250.00|-500.50|09-03-2024 02:05:07 PM", EncodeEntry(e))
}

func TestDecodeEntry(t *testing.T) {
	e, err := DecodeEntry(" TXN012 | ACC003 | Deposit | 100.00 | 1100.00 | 01-12-2023 09:30:00 AM ")
	require.NoError(t, err)

	assert.Equal(t, "TXN012", e.ID)
	assert.Equal(t, int64(12), e.Seq)
	assert.Equal(t, "ACC003", e.AccountNumber)
	assert.Equal(t, domain.EntryKindDeposit, e.Kind)
	assert.True(t, e.Amount.Equal(domain.MustMoney("100.00")))
	assert.True(t, e.ResultingBalance.Equal(domain.MustMoney("1100.00")))
	assert.Equal(t, 9, e.CreatedAt.Hour())

	again, err := DecodeEntry(EncodeEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e.ID, again.ID)
	assert.True(t, e.CreatedAt.Equal(again.CreatedAt))
}

func TestDecodeEntryRejectsMalformed(t *testing.T) {
	lines := map[string]string{
		"too few fields":  "TXN001|ACC001|Deposit|1.00",
		"extra field":     "TXN001|ACC001|Deposit|1.00|1.00|01-12-2023 09:30:00 AM|junk",
		"bad id":          "X1|ACC001|Deposit|1.00|1.00|01-12-2023 09:30:00 AM",
		"bad kind":        "TXN001|ACC001|Bonus|1.00|1.00|01-12-2023 09:30:00 AM",
		"bad amount":      "TXN001|ACC001|Deposit|abc|1.00|01-12-2023 09:30:00 AM",
		"zero amount":     "TXN001|ACC001|Deposit|0.00|1.00|01-12-2023 09:30:00 AM",
		"bad timestamp":   "TXN001|ACC001|Deposit|1.00|1.00|2023-12-01T09:30:00Z",
		"missing account": "TXN001||Deposit|1.00|1.00|01-12-2023 09:30:00 AM",
	}

	for name, line := range lines {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEntry(line)
			assert.Error(t, err)
		})
	}
}

func TestAccountRecordRoundTrip(t *testing.T) {
	r := usecase.AccountRecord{
		Number: "ACC004",
		Customer: domain.Customer{
			ID:      "CUS002",
			Name:    "Kwame Mensah",
			Age:     41,
			Contact: "0201234567",
			Address: "7 Ring Road",
			Type:    domain.CustomerTypePremium,
		},
		Kind:    domain.AccountKindChecking,
		Balance: domain.MustMoney("-12.5"),
	}

	line := EncodeAccount(r)
	assert.Equal(t, "ACC004|Kwame Mensah|41|0201234567|7 Ring Road|CUS002|Premium|Checking|-12.50", line)

	got, err := DecodeAccount(line)
	require.NoError(t, err)
	assert.Equal(t, r.Number, got.Number)
	assert.Equal(t, r.Customer, got.Customer)
	assert.Equal(t, r.Kind, got.Kind)
	assert.True(t, r.Balance.Equal(got.Balance))
}

func TestDecodeAccountLegacyFormat(t *testing.T) {
	got, err := DecodeAccount("ACC002|Ama Owusu|30|0551234567|Accra|Regular|Savings|900.00")
	require.NoError(t, err)
	assert.Empty(t, got.Customer.ID)
	assert.Equal(t, domain.CustomerTypeRegular, got.Customer.Type)
	assert.Equal(t, domain.AccountKindSavings, got.Kind)
}

func TestDecodeAccountRejectsMalformed(t *testing.T) {
	_, err := DecodeAccount("ACC002|Ama|x|0551234567|Accra|CUS001|Regular|Savings|900.00")
	assert.True(t, errors.Is(err, domain.ErrInvalidCustomerAge))

	_, err = DecodeAccount("ACC002|Ama|30|0551234567|Accra|CUS001|Regular|Brokerage|900.00")
	assert.True(t, errors.Is(err, domain.ErrInvalidAccountKind))

	_, err = DecodeAccount("only|three|fields")
	assert.Error(t, err)
}
