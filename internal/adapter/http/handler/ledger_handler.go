package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	ReconcileAccount(ctx context.Context, number string) (*usecase.ReconciliationResult, error)
	ReconcileAllAccounts(ctx context.Context) ([]*usecase.ReconciliationResult, error)
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Reconcile checks every account against the ledger. It answers 409 when
// any account disagrees.
func (h *LedgerHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	results, err := h.ledgerUC.ReconcileAllAccounts(r.Context())
	if err != nil {
		writeDomainError(w, "failed to reconcile", err)
		return
	}

	report := dto.ReconcileReportResponse{
		Consistent: true,
		Accounts:   make([]*dto.ReconciliationResponse, len(results)),
	}
	for i, res := range results {
		report.Accounts[i] = dto.ReconciliationFromUseCase(res)
		if !res.IsReconciled {
			report.Consistent = false
		}
	}

	status := http.StatusOK
	if !report.Consistent {
		status = http.StatusConflict
	}
	writeJSON(w, status, report)
}

// ReconcileAccount checks one account against the ledger.
func (h *LedgerHandler) ReconcileAccount(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerUC.ReconcileAccount(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) {
			writeError(w, http.StatusConflict, "ledger inconsistent", err.Error())
			return
		}
		writeDomainError(w, "failed to reconcile account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromUseCase(result))
}
