package dto

import (
	"time"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// Amounts are rendered as strings with two decimal places.

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Age:     c.Age,
		Contact: c.Contact,
		Address: c.Address,
		Type:    string(c.Type),
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Number    string            `json:"number"`
	Kind      string            `json:"kind"`
	Status    string            `json:"status"`
	Balance   string            `json:"balance"`
	Customer  *CustomerResponse `json:"customer"`
	CreatedAt time.Time         `json:"created_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Number:    a.Number(),
		Kind:      string(a.Kind()),
		Status:    string(a.Status()),
		Balance:   domain.FormatMoney(a.Balance()),
		Customer:  CustomerFromDomain(a.Customer()),
		CreatedAt: a.CreatedAt(),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID               string    `json:"id"`
	AccountNumber    string    `json:"account_number"`
	Kind             string    `json:"kind"`
	Amount           string    `json:"amount"`
	ResultingBalance string    `json:"resulting_balance"`
	CreatedAt        time.Time `json:"created_at"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:               e.ID,
		AccountNumber:    e.AccountNumber,
		Kind:             string(e.Kind),
		Amount:           domain.FormatMoney(e.Amount),
		ResultingBalance: domain.FormatMoney(e.ResultingBalance),
		CreatedAt:        e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID          string         `json:"id"`
	FromAccount string         `json:"from_account"`
	ToAccount   string         `json:"to_account"`
	Amount      string         `json:"amount"`
	Status      string         `json:"status"`
	Debit       *EntryResponse `json:"debit"`
	Credit      *EntryResponse `json:"credit,omitempty"`
	Reversal    *EntryResponse `json:"reversal,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TransferFromDomain converts domain transfer to response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	resp := &TransferResponse{
		ID:          t.ID,
		FromAccount: t.FromAccountID,
		ToAccount:   t.ToAccountID,
		Amount:      domain.FormatMoney(t.Amount),
		Status:      string(t.Status),
		Debit:       EntryFromDomain(t.Debit),
		CreatedAt:   t.CreatedAt,
	}
	if t.Credit != nil {
		resp.Credit = EntryFromDomain(*t.Credit)
	}
	if t.Reversal != nil {
		resp.Reversal = EntryFromDomain(*t.Reversal)
	}
	return resp
}

// TransfersFromDomain converts domain transfers to responses.
func TransfersFromDomain(transfers []*domain.Transfer) []*TransferResponse {
	result := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferFromDomain(t)
	}
	return result
}

// StatementResponse represents an account statement.
type StatementResponse struct {
	Account      *AccountResponse `json:"account"`
	Entries      []*EntryResponse `json:"entries"`
	TotalCredits string           `json:"total_credits"`
	TotalDebits  string           `json:"total_debits"`
	NetChange    string           `json:"net_change"`
	GeneratedAt  time.Time        `json:"generated_at"`
}

// StatementFromUseCase converts a statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	account := AccountFromDomain(s.Account)
	account.Balance = domain.FormatMoney(s.Balance)

	return &StatementResponse{
		Account:      account,
		Entries:      EntriesFromDomain(s.Entries),
		TotalCredits: domain.FormatMoney(s.TotalCredits),
		TotalDebits:  domain.FormatMoney(s.TotalDebits),
		NetChange:    domain.FormatMoney(s.NetChange),
		GeneratedAt:  s.GeneratedAt,
	}
}

// ReconciliationResponse represents one account's reconciliation.
type ReconciliationResponse struct {
	AccountNumber   string   `json:"account_number"`
	RecordedBalance string   `json:"recorded_balance"`
	LedgerBalance   string   `json:"ledger_balance"`
	Difference      string   `json:"difference"`
	Entries         int      `json:"entries"`
	IsReconciled    bool     `json:"is_reconciled"`
	Issues          []string `json:"issues,omitempty"`
}

// ReconciliationFromUseCase converts a reconciliation result to a response.
func ReconciliationFromUseCase(r *usecase.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		AccountNumber:   r.AccountNumber,
		RecordedBalance: domain.FormatMoney(r.RecordedBalance),
		LedgerBalance:   domain.FormatMoney(r.LedgerBalance),
		Difference:      domain.FormatMoney(r.Difference),
		Entries:         r.Entries,
		IsReconciled:    r.IsReconciled,
		Issues:          r.Issues,
	}
}

// ReconcileReportResponse is the ledger-wide reconciliation report.
type ReconcileReportResponse struct {
	Consistent bool                      `json:"consistent"`
	Accounts   []*ReconciliationResponse `json:"accounts"`
}

// SummaryResponse holds bank-wide totals.
type SummaryResponse struct {
	Accounts     int    `json:"accounts"`
	Customers    int    `json:"customers"`
	Entries      int    `json:"entries"`
	TotalBalance string `json:"total_balance"`
}

// SummaryFromUseCase converts bank totals to a response.
func SummaryFromUseCase(s usecase.BankSummary) *SummaryResponse {
	return &SummaryResponse{
		Accounts:     s.Accounts,
		Customers:    s.Customers,
		Entries:      s.Entries,
		TotalBalance: domain.FormatMoney(s.TotalBalance),
	}
}

// FeeResponse is the outcome of charging a monthly fee.
type FeeResponse struct {
	AccountNumber string         `json:"account_number"`
	Applied       bool           `json:"applied"`
	Entry         *EntryResponse `json:"entry,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// FeeFromUseCase converts a fee result to a response.
func FeeFromUseCase(r usecase.FeeResult) *FeeResponse {
	resp := &FeeResponse{AccountNumber: r.AccountNumber, Applied: r.Applied}
	if r.Entry != nil {
		resp.Entry = EntryFromDomain(*r.Entry)
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}

// InterestResponse reports the interest a savings balance would earn.
type InterestResponse struct {
	AccountNumber string `json:"account_number"`
	Interest      string `json:"interest"`
}

// ListAccountsResponse represents a list of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int                `json:"total"`
}

// ListEntriesResponse represents a list of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int              `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
