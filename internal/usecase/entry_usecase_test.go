package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func TestEntryUseCase_ListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2024, 3, 9, 14, 0, 0, 0, time.Local)
	entries := []domain.Entry{
		{ID: "TXN001", Seq: 1, AccountNumber: "ACC001", Kind: domain.EntryKindDeposit, Amount: money("300"), ResultingBalance: money("300"), CreatedAt: base},
		{ID: "TXN002", Seq: 2, AccountNumber: "ACC001", Kind: domain.EntryKindWithdrawal, Amount: money("50"), ResultingBalance: money("250"), CreatedAt: base.Add(time.Minute)},
		{ID: "TXN003", Seq: 3, AccountNumber: "ACC001", Kind: domain.EntryKindDeposit, Amount: money("120"), ResultingBalance: money("370"), CreatedAt: base.Add(time.Minute)},
	}

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().All().Return(entries).AnyTimes()
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	uc := usecase.NewEntryUseCase(ledgerRepo, accountRepo)

	tests := []struct {
		name  string
		input usecase.ListEntriesInput
		want  []string
	}{
		{name: "insertion order", input: usecase.ListEntriesInput{}, want: []string{"TXN001", "TXN002", "TXN003"}},
		{name: "newest first", input: usecase.ListEntriesInput{Sort: usecase.EntrySortTime}, want: []string{"TXN003", "TXN002", "TXN001"}},
		{name: "by amount", input: usecase.ListEntriesInput{Sort: usecase.EntrySortAmount}, want: []string{"TXN002", "TXN003", "TXN001"}},
		{name: "deposits only", input: usecase.ListEntriesInput{Kind: domain.EntryKindDeposit}, want: []string{"TXN001", "TXN003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.ListEntries(context.Background(), tt.input)
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, e := range got {
				ids[i] = e.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEntryUseCase_ListEntriesUnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	accountRepo.EXPECT().FindAccount("ACC404").Return(nil, domain.ErrAccountNotFound)

	uc := usecase.NewEntryUseCase(mocks.NewMockLedgerRepository(ctrl), accountRepo)

	_, err := uc.ListEntries(context.Background(), usecase.ListEntriesInput{AccountNumber: "ACC404"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestEntryUseCase_Statement(t *testing.T) {
	b := newBank()
	b.open(t, domain.AccountKindChecking, "1000")
	b.open(t, domain.AccountKindChecking, "200")

	_, err := b.accountUC.Withdraw(t.Context(), "ACC001", money("150.25"))
	require.NoError(t, err)
	_, err = b.transferUC.CreateTransfer(t.Context(), usecase.CreateTransferInput{
		FromAccountID: "ACC002",
		ToAccountID:   "ACC001",
		Amount:        money("75"),
	})
	require.NoError(t, err)

	st, err := b.entryUC.Statement(t.Context(), "ACC001")
	require.NoError(t, err)

	require.Len(t, st.Entries, 3)
	assert.Equal(t, domain.EntryKindTransferIn, st.Entries[0].Kind)
	assert.Equal(t, domain.EntryKindDeposit, st.Entries[2].Kind)
	assert.Equal(t, "1075.00", domain.FormatMoney(st.TotalCredits))
	assert.Equal(t, "150.25", domain.FormatMoney(st.TotalDebits))
	assert.Equal(t, "924.75", domain.FormatMoney(st.NetChange))
	assert.True(t, st.NetChange.Equal(st.Balance))

	_, err = b.entryUC.Statement(t.Context(), "ACC404")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestParseEntrySort(t *testing.T) {
	for in, want := range map[string]usecase.EntrySort{
		"":        usecase.EntrySortInsertion,
		"time":    usecase.EntrySortTime,
		" Amount": usecase.EntrySortAmount,
	} {
		got, err := usecase.ParseEntrySort(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := usecase.ParseEntrySort("size")
	assert.Error(t, err)
}
