package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]domain.Entry, error)
	Statement(ctx context.Context, number string) (*usecase.Statement, error)
}

// EntryHandler handles entry-related HTTP requests.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// List lists ledger entries. Query parameters: sort=time|amount, kind=<entry kind>.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "")
}

// ListByAccount lists entries for an account.
func (h *EntryHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, chi.URLParam(r, "number"))
}

func (h *EntryHandler) list(w http.ResponseWriter, r *http.Request, number string) {
	query := r.URL.Query()

	sort, err := usecase.ParseEntrySort(query.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sort", err.Error())
		return
	}

	input := usecase.ListEntriesInput{AccountNumber: number, Sort: sort}
	if k := query.Get("kind"); k != "" {
		kind, err := domain.ParseEntryKind(k)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid kind", err.Error())
			return
		}
		input.Kind = kind
	}

	entries, err := h.entryUC.ListEntries(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to list entries", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   len(entries),
	})
}

// Statement returns an account statement.
func (h *EntryHandler) Statement(w http.ResponseWriter, r *http.Request) {
	st, err := h.entryUC.Statement(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeDomainError(w, "failed to build statement", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(st))
}
