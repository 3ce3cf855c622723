package file

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// TimestampLayout is the fixed timestamp format of persisted entries.
const TimestampLayout = "02-01-2006 03:04:05 PM"

const separator = "|"

var errMalformedLine = errors.New("malformed line")

// EncodeEntry renders id|account|kind|amount|balance|timestamp.
func EncodeEntry(e domain.Entry) string {
	return strings.Join([]string{
		e.ID,
		e.AccountNumber,
		string(e.Kind),
		domain.FormatMoney(e.Amount),
		domain.FormatMoney(e.ResultingBalance),
		e.CreatedAt.Format(TimestampLayout),
	}, separator)
}

// DecodeEntry parses a line produced by EncodeEntry. Any other field count is malformed.
func DecodeEntry(line string) (domain.Entry, error) {
	parts := strings.Split(strings.TrimSpace(line), separator)
	if len(parts) != 6 {
		return domain.Entry{}, fmt.Errorf("%w: want 6 fields, got %d", errMalformedLine, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	seq, err := domain.ParseEntryID(parts[0])
	if err != nil {
		return domain.Entry{}, err
	}

	kind, err := domain.ParseEntryKind(parts[2])
	if err != nil {
		return domain.Entry{}, err
	}

	amount, err := domain.ParseMoney(parts[3])
	if err != nil {
		return domain.Entry{}, fmt.Errorf("amount: %w", err)
	}

	balance, err := domain.ParseMoney(parts[4])
	if err != nil {
		return domain.Entry{}, fmt.Errorf("balance: %w", err)
	}

	createdAt, err := time.ParseInLocation(TimestampLayout, parts[5], time.Local)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("%w: timestamp: %w", errMalformedLine, err)
	}

	entry := domain.Entry{
		ID:               parts[0],
		Seq:              seq,
		AccountNumber:    parts[1],
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: balance,
		CreatedAt:        createdAt,
	}
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, err
	}

	return entry, nil
}

// EncodeAccount renders number|name|age|contact|address|customerID|customerType|accountType|balance.
func EncodeAccount(r usecase.AccountRecord) string {
	return strings.Join([]string{
		r.Number,
		r.Customer.Name,
		strconv.Itoa(r.Customer.Age),
		r.Customer.Contact,
		r.Customer.Address,
		r.Customer.ID,
		string(r.Customer.Type),
		string(r.Kind),
		domain.FormatMoney(r.Balance),
	}, separator)
}

// DecodeAccount parses an accounts line. Legacy eight-field lines carry no
// customer identifier; the returned record then has an empty Customer.ID.
func DecodeAccount(line string) (usecase.AccountRecord, error) {
	parts := strings.Split(strings.TrimSpace(line), separator)
	if len(parts) != 8 && len(parts) != 9 {
		return usecase.AccountRecord{}, fmt.Errorf("%w: want 9 fields, got %d", errMalformedLine, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	age, err := strconv.Atoi(parts[2])
	if err != nil {
		return usecase.AccountRecord{}, fmt.Errorf("%w: age: %w", domain.ErrInvalidCustomerAge, err)
	}

	i := 5
	var customerID string
	if len(parts) == 9 {
		customerID = parts[i]
		i++
	}

	customerType, err := domain.ParseCustomerType(parts[i])
	if err != nil {
		return usecase.AccountRecord{}, err
	}

	kind, err := domain.ParseAccountKind(parts[i+1])
	if err != nil {
		return usecase.AccountRecord{}, err
	}

	balance, err := domain.ParseMoney(parts[i+2])
	if err != nil {
		return usecase.AccountRecord{}, fmt.Errorf("balance: %w", err)
	}

	if err := domain.ValidateAccountNumber(parts[0]); err != nil {
		return usecase.AccountRecord{}, err
	}

	return usecase.AccountRecord{
		Number: parts[0],
		Customer: domain.Customer{
			ID:      customerID,
			Name:    parts[1],
			Age:     age,
			Contact: parts[3],
			Address: parts[4],
			Type:    customerType,
		},
		Kind:    kind,
		Balance: balance,
	}, nil
}
