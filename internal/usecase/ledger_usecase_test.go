package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

func TestLedgerUseCase_ReconcileAccount(t *testing.T) {
	b := newBank()
	b.open(t, domain.AccountKindChecking, "500")
	_, err := b.accountUC.Withdraw(t.Context(), "ACC001", money("800"))
	require.NoError(t, err)
	_, err = b.accountUC.Deposit(t.Context(), "ACC001", money("40.10"))
	require.NoError(t, err)

	result, err := b.ledgerUC.ReconcileAccount(t.Context(), "ACC001")
	require.NoError(t, err)

	assert.True(t, result.IsReconciled, "issues: %v", result.Issues)
	assert.Equal(t, 3, result.Entries)
	assert.Equal(t, "-259.90", domain.FormatMoney(result.LedgerBalance))
	assert.True(t, result.Difference.IsZero())
}

func TestLedgerUseCase_DetectsDrift(t *testing.T) {
	b := newBank()
	b.open(t, domain.AccountKindChecking, "500")

	customer, ok := b.accounts.FindCustomer("CUS001")
	require.True(t, ok)

	// ACC002 claims a balance nothing in the ledger explains.
	drifted, err := domain.RestoreAccount("ACC002", domain.AccountKindSavings, customer, domain.DefaultSavingsPolicy(), money("900"), b.ledger)
	require.NoError(t, err)
	require.NoError(t, b.accounts.Restore(drifted))
	require.NoError(t, b.ledger.Append(domain.Entry{
		ID: "TXN010", Seq: 10, AccountNumber: "ACC002", Kind: domain.EntryKindDeposit,
		Amount: money("800"), ResultingBalance: money("800"), CreatedAt: time.Now(),
	}))

	result, err := b.ledgerUC.ReconcileAccount(t.Context(), "ACC002")
	require.NoError(t, err)
	assert.False(t, result.IsReconciled)
	assert.Equal(t, "100.00", domain.FormatMoney(result.Difference))

	results, err := b.ledgerUC.ReconcileAllAccounts(t.Context())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].IsReconciled)

	ok, err = b.ledgerUC.CheckConsistency(t.Context())
	assert.False(t, ok)
	assert.ErrorIs(t, err, usecase.ErrInconsistentLedger)
	assert.Contains(t, err.Error(), "ACC002")
}

func TestLedgerUseCase_DetectsBrokenChain(t *testing.T) {
	b := newBank()
	customer := &domain.Customer{ID: "CUS001", Name: "Ada", Age: 36, Contact: "+44 20 7946 0000", Address: "London", Type: domain.CustomerTypeRegular}
	account, err := domain.RestoreAccount("ACC001", domain.AccountKindChecking, customer, domain.DefaultCheckingPolicy(), money("70"), b.ledger)
	require.NoError(t, err)
	require.NoError(t, b.accounts.Restore(account))

	for _, e := range []domain.Entry{
		{ID: "TXN001", Seq: 1, AccountNumber: "ACC001", Kind: domain.EntryKindDeposit, Amount: money("100"), ResultingBalance: money("100"), CreatedAt: time.Now()},
		{ID: "TXN002", Seq: 2, AccountNumber: "ACC001", Kind: domain.EntryKindWithdrawal, Amount: money("20"), ResultingBalance: money("70"), CreatedAt: time.Now()},
	} {
		require.NoError(t, b.ledger.Append(e))
	}

	result, err := b.ledgerUC.ReconcileAccount(t.Context(), "ACC001")
	require.NoError(t, err)

	assert.False(t, result.IsReconciled)
	assert.True(t, result.Difference.IsZero())
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "TXN002")
}
