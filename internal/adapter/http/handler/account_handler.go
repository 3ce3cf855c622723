package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	OpenAccount(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, number string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Entry, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Entry, error)
	CloseAccount(ctx context.Context, number string) (*domain.Account, error)
	ApplyMonthlyFee(ctx context.Context, number string) (usecase.FeeResult, error)
	ApplyMonthlyFees(ctx context.Context) ([]usecase.FeeResult, error)
	CalculateInterest(ctx context.Context, number string) (decimal.Decimal, error)
	Summary(ctx context.Context) (usecase.BankSummary, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Create opens a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	account, err := h.accountUC.OpenAccount(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to open account", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by number.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountUC.GetAccount(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeDomainError(w, "failed to get account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists every account.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context())
	if err != nil {
		writeDomainError(w, "failed to list accounts", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    len(accounts),
	})
}

// Customers lists every customer.
func (h *AccountHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.accountUC.ListCustomers(r.Context())
	if err != nil {
		writeDomainError(w, "failed to list customers", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomersFromDomain(customers))
}

// Deposit credits an account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, "deposit failed", h.accountUC.Deposit)
}

// Withdraw debits an account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, "withdrawal failed", h.accountUC.Withdraw)
}

func (h *AccountHandler) move(
	w http.ResponseWriter,
	r *http.Request,
	failure string,
	op func(context.Context, string, decimal.Decimal) (domain.Entry, error),
) {
	var req dto.AmountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	amount, err := req.Decimal()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	entry, err := op(r.Context(), chi.URLParam(r, "number"), amount)
	if err != nil {
		writeDomainError(w, failure, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Close closes an account.
func (h *AccountHandler) Close(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountUC.CloseAccount(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeDomainError(w, "failed to close account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// ApplyFee charges the monthly fee of one checking account.
func (h *AccountHandler) ApplyFee(w http.ResponseWriter, r *http.Request) {
	result, err := h.accountUC.ApplyMonthlyFee(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeDomainError(w, "failed to apply fee", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FeeFromUseCase(result))
}

// ApplyFees charges the monthly fee of every active checking account.
func (h *AccountHandler) ApplyFees(w http.ResponseWriter, r *http.Request) {
	results, err := h.accountUC.ApplyMonthlyFees(r.Context())
	if err != nil {
		writeDomainError(w, "failed to apply fees", err)
		return
	}

	resp := make([]*dto.FeeResponse, len(results))
	for i, res := range results {
		resp[i] = dto.FeeFromUseCase(res)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Interest reports the interest a savings account would earn.
func (h *AccountHandler) Interest(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	interest, err := h.accountUC.CalculateInterest(r.Context(), number)
	if err != nil {
		writeDomainError(w, "failed to calculate interest", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.InterestResponse{
		AccountNumber: number,
		Interest:      domain.FormatMoney(interest),
	})
}

// Summary reports bank-wide totals.
func (h *AccountHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.accountUC.Summary(r.Context())
	if err != nil {
		writeDomainError(w, "failed to build summary", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary))
}
