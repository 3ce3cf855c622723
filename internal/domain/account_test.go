package domain

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testJournal is a minimal in-package journal.
type testJournal struct {
	mu      sync.Mutex
	seq     int64
	entries []Entry
	fail    error
}

func (j *testJournal) Record(e Entry) (Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.fail != nil {
		return Entry{}, j.fail
	}
	j.seq++
	e.Seq = j.seq
	e.ID = EntryID(j.seq)
	e.CreatedAt = time.Now()
	j.entries = append(j.entries, e)
	return e, nil
}

func (j *testJournal) count(number string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, e := range j.entries {
		if e.AccountNumber == number {
			n++
		}
	}
	return n
}

func testCustomer(t CustomerType) *Customer {
	return &Customer{ID: "CUS001", Name: "Ada Lovelace", Age: 36, Contact: "0241234567", Address: "12 Main St", Type: t}
}

func openChecking(t *testing.T, j *testJournal, initial string) *Account {
	t.Helper()
	acc, _, err := OpenAccount(OpenAccountParams{
		Number:         "ACC001",
		Kind:           AccountKindChecking,
		Customer:       testCustomer(CustomerTypeRegular),
		Policy:         DefaultCheckingPolicy(),
		InitialDeposit: MustMoney(initial),
		Journal:        j,
	})
	require.NoError(t, err)
	return acc
}

func openSavings(t *testing.T, j *testJournal, initial string) *Account {
	t.Helper()
	acc, _, err := OpenAccount(OpenAccountParams{
		Number:         "ACC002",
		Kind:           AccountKindSavings,
		Customer:       testCustomer(CustomerTypeRegular),
		Policy:         DefaultSavingsPolicy(),
		InitialDeposit: MustMoney(initial),
		Journal:        j,
	})
	require.NoError(t, err)
	return acc
}

func TestOpenAccount(t *testing.T) {
	tests := []struct {
		name        string
		kind        AccountKind
		initial     decimal.Decimal
		expectError error
	}{
		{name: "checking with positive deposit", kind: AccountKindChecking, initial: MustMoney("1000.00")},
		{name: "savings at minimum balance", kind: AccountKindSavings, initial: MustMoney("500.00")},
		{name: "savings below minimum balance", kind: AccountKindSavings, initial: MustMoney("499.99"), expectError: ErrInsufficientFunds},
		{name: "zero deposit", kind: AccountKindChecking, initial: decimal.Zero, expectError: ErrInvalidAmount},
		{name: "negative deposit", kind: AccountKindChecking, initial: MustMoney("-10.00"), expectError: ErrInvalidAmount},
		{name: "unknown kind", kind: AccountKind("Brokerage"), initial: MustMoney("10.00"), expectError: ErrInvalidAccountKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &testJournal{}
			policy := DefaultCheckingPolicy()
			if tt.kind == AccountKindSavings {
				policy = DefaultSavingsPolicy()
			}

			acc, entry, err := OpenAccount(OpenAccountParams{
				Number:         "ACC010",
				Kind:           tt.kind,
				Customer:       testCustomer(CustomerTypeRegular),
				Policy:         policy,
				InitialDeposit: tt.initial,
				Journal:        j,
			})

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, acc)
				assert.Empty(t, j.entries)
				return
			}

			require.NoError(t, err)
			assert.True(t, acc.Balance().Equal(tt.initial))
			assert.Equal(t, EntryKindDeposit, entry.Kind)
			assert.True(t, entry.ResultingBalance.Equal(tt.initial))
			assert.Equal(t, 1, j.count("ACC010"))
		})
	}
}

func TestAccount_CheckingOverdraftScenario(t *testing.T) {
	j := &testJournal{}
	acc := openChecking(t, j, "1000.00")

	entry, err := acc.Withdraw(MustMoney("1500.00"))
	require.NoError(t, err)
	assert.Equal(t, EntryKindWithdrawal, entry.Kind)
	assert.True(t, entry.ResultingBalance.Equal(MustMoney("-500.00")), "got %s", entry.ResultingBalance)
	assert.True(t, acc.Balance().Equal(MustMoney("-500.00")))

	_, err = acc.Withdraw(MustMoney("600.00"))
	require.ErrorIs(t, err, ErrOverdraftExceeded)
	assert.True(t, acc.Balance().Equal(MustMoney("-500.00")))
	assert.Equal(t, 2, j.count("ACC001"))
}

func TestAccount_SavingsMinimumBalance(t *testing.T) {
	j := &testJournal{}
	acc := openSavings(t, j, "800.00")

	_, err := acc.Withdraw(MustMoney("300.01"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, acc.Balance().Equal(MustMoney("800.00")))

	_, err = acc.Withdraw(MustMoney("300.00"))
	require.NoError(t, err)
	assert.True(t, acc.Balance().Equal(MustMoney("500.00")))
}

func TestAccount_RejectsNonPositiveAmounts(t *testing.T) {
	j := &testJournal{}
	acc := openChecking(t, j, "100.00")
	before := j.count("ACC001")

	ops := map[string]func() (Entry, error){
		"deposit 0":     func() (Entry, error) { return acc.Deposit(decimal.Zero) },
		"deposit -5.00": func() (Entry, error) { return acc.Deposit(MustMoney("-5.00")) },
		"withdraw 0":    func() (Entry, error) { return acc.Withdraw(decimal.Zero) },
		"withdraw -1":   func() (Entry, error) { return acc.Withdraw(MustMoney("-1.00")) },
		"sub-cent":      func() (Entry, error) { return acc.Deposit(decimal.RequireFromString("0.001")) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			_, err := op()
			require.ErrorIs(t, err, ErrInvalidAmount)
		})
	}

	assert.True(t, acc.Balance().Equal(MustMoney("100.00")))
	assert.Equal(t, before, j.count("ACC001"))
}

func TestAccount_KindMismatch(t *testing.T) {
	j := &testJournal{}
	acc := openChecking(t, j, "100.00")

	_, err := acc.DepositWithKind(MustMoney("10.00"), EntryKindWithdrawal)
	require.ErrorIs(t, err, ErrInvalidEntry)

	_, err = acc.WithdrawWithKind(MustMoney("10.00"), EntryKindTransferIn)
	require.ErrorIs(t, err, ErrInvalidEntry)

	entry, err := acc.WithdrawWithKind(MustMoney("10.00"), EntryKindTransferOut)
	require.NoError(t, err)
	assert.Equal(t, EntryKindTransferOut, entry.Kind)
}

func TestAccount_ClosedRejectsMutations(t *testing.T) {
	j := &testJournal{}
	acc := openChecking(t, j, "100.00")
	acc.Close()

	_, err := acc.Deposit(MustMoney("1.00"))
	require.ErrorIs(t, err, ErrAccountClosed)
	_, err = acc.Withdraw(MustMoney("1.00"))
	require.ErrorIs(t, err, ErrAccountClosed)

	// Compensations still land.
	_, err = acc.DepositWithKind(MustMoney("1.00"), EntryKindReversal)
	require.NoError(t, err)
	assert.True(t, acc.Balance().Equal(MustMoney("101.00")))
}

func TestAccount_JournalFailureLeavesBalance(t *testing.T) {
	j := &testJournal{}
	acc := openChecking(t, j, "100.00")
	j.fail = errors.New("disk on fire")

	_, err := acc.Deposit(MustMoney("50.00"))
	require.Error(t, err)
	assert.True(t, acc.Balance().Equal(MustMoney("100.00")))
}

func TestAccount_ApplyMonthlyFee(t *testing.T) {
	t.Run("regular customer pays", func(t *testing.T) {
		j := &testJournal{}
		acc := openChecking(t, j, "100.00")

		entry, applied, err := acc.ApplyMonthlyFee()
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, EntryKindFee, entry.Kind)
		assert.True(t, acc.Balance().Equal(MustMoney("90.00")))
	})

	t.Run("premium customer waived", func(t *testing.T) {
		j := &testJournal{}
		acc, _, err := OpenAccount(OpenAccountParams{
			Number:         "ACC003",
			Kind:           AccountKindChecking,
			Customer:       testCustomer(CustomerTypePremium),
			Policy:         DefaultCheckingPolicy(),
			InitialDeposit: MustMoney("100.00"),
			Journal:        j,
		})
		require.NoError(t, err)

		_, applied, err := acc.ApplyMonthlyFee()
		require.NoError(t, err)
		assert.False(t, applied)
		assert.True(t, acc.Balance().Equal(MustMoney("100.00")))
	})

	t.Run("fee cannot breach overdraft", func(t *testing.T) {
		j := &testJournal{}
		acc := openChecking(t, j, "5.00")
		_, err := acc.Withdraw(MustMoney("1000.00"))
		require.NoError(t, err)

		_, _, err = acc.ApplyMonthlyFee()
		require.ErrorIs(t, err, ErrOverdraftExceeded)
	})

	t.Run("savings has no fee", func(t *testing.T) {
		j := &testJournal{}
		acc := openSavings(t, j, "600.00")
		_, _, err := acc.ApplyMonthlyFee()
		require.ErrorIs(t, err, ErrInvalidAccountKind)
	})
}

func TestAccount_CalculateInterest(t *testing.T) {
	j := &testJournal{}
	acc := openSavings(t, j, "1000.00")
	assert.True(t, acc.CalculateInterest().Equal(MustMoney("35.00")))

	checking := openChecking(t, j, "1000.00")
	assert.True(t, checking.CalculateInterest().IsZero())
}

func TestAccount_ConcurrentDepositWithdrawNoLostUpdates(t *testing.T) {
	j := &testJournal{}
	acc := openChecking(t, j, "1000.00")
	amount := MustMoney("100.00")

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := acc.Deposit(amount)
			assert.NoError(t, err)
			_, err = acc.Withdraw(amount)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, acc.Balance().Equal(MustMoney("1000.00")), "got %s", acc.Balance())
	assert.Equal(t, 1+2*workers, j.count("ACC001"))
}

func TestAccount_ConcurrentWithdrawalsRespectFloor(t *testing.T) {
	j := &testJournal{}
	acc := openSavings(t, j, "1500.00")

	const workers = 40
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			if _, err := acc.Withdraw(MustMoney("100.00")); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrInsufficientFunds)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, successes)
	assert.True(t, acc.Balance().Equal(MustMoney("500.00")), "got %s", acc.Balance())
}
