package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

const timeLayout = "02-01-2006 03:04:05 PM"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeAccount(w io.Writer, a *domain.Account) {
	writeAccounts(w, []*domain.Account{a})
}

func writeAccounts(w io.Writer, accounts []*domain.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "\nNo accounts.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\nNUMBER\tCUSTOMER\tTYPE\tSTATUS\tBALANCE")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			a.Number(), a.Customer().Name, a.Kind(), a.Status(), domain.FormatMoney(a.Balance()))
	}
	tw.Flush()
}

func writeEntries(w io.Writer, entries []domain.Entry) {
	tw := newTable(w)
	fmt.Fprintln(tw, "\nID\tACCOUNT\tTYPE\tAMOUNT\tBALANCE\tDATE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.AccountNumber, e.Kind, signed(e), domain.FormatMoney(e.ResultingBalance), e.CreatedAt.Format(timeLayout))
	}
	tw.Flush()
}

func signed(e domain.Entry) string {
	if e.Kind.IsCredit() {
		return "+" + domain.FormatMoney(e.Amount)
	}
	return "-" + domain.FormatMoney(e.Amount)
}

func writeCustomers(w io.Writer, customers []*domain.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(w, "\nNo customers.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\nID\tNAME\tAGE\tCONTACT\tTYPE")
	for _, c := range customers {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", c.ID, c.Name, c.Age, c.Contact, c.Type)
	}
	tw.Flush()
}

func writeStatement(w io.Writer, st *usecase.Statement) {
	rule := strings.Repeat("-", 60)
	fmt.Fprintf(w, "\n%s\nSTATEMENT FOR %s (%s)\nCustomer: %s\nGenerated: %s\n%s",
		rule, st.Account.Number(), st.Account.Kind(), st.Account.Customer().Name, st.GeneratedAt.Format(timeLayout), rule)

	if len(st.Entries) == 0 {
		fmt.Fprintln(w, "\nNo transactions recorded.")
	} else {
		writeEntries(w, st.Entries)
	}

	fmt.Fprintf(w, "%s\nTotal credits:   %s\nTotal debits:    %s\nNet change:      %s\nCurrent balance: %s\n",
		rule,
		domain.FormatMoney(st.TotalCredits),
		domain.FormatMoney(st.TotalDebits),
		domain.FormatMoney(st.NetChange),
		domain.FormatMoney(st.Balance))
}

func writeReconciliation(w io.Writer, results []*usecase.ReconciliationResult) {
	tw := newTable(w)
	fmt.Fprintln(tw, "\nACCOUNT\tBALANCE\tLEDGER\tDIFFERENCE\tSTATUS")
	consistent := true
	for _, r := range results {
		status := "OK"
		if !r.IsReconciled {
			status = "MISMATCH"
			consistent = false
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.AccountNumber,
			domain.FormatMoney(r.RecordedBalance), domain.FormatMoney(r.LedgerBalance), domain.FormatMoney(r.Difference), status)
	}
	tw.Flush()

	for _, r := range results {
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "  %s: %s\n", r.AccountNumber, issue)
		}
	}
	if consistent {
		fmt.Fprintln(w, "\nLedger is consistent.")
	} else {
		fmt.Fprintln(w, "\nLedger is INCONSISTENT.")
	}
}

func writeSimulation(w io.Writer, r *usecase.SimulationResult) {
	fmt.Fprintf(w, "\nSimulation on %s: %d workers x %d rounds in %s\n", r.AccountNumber, r.Workers, r.Rounds, r.Duration)
	fmt.Fprintf(w, "Deposits: %d  Withdrawals: %d  Failures: %d\n", r.Deposits, r.Withdrawals, r.Failures)
	fmt.Fprintf(w, "Initial balance: %s  Final balance: %s\n", domain.FormatMoney(r.InitialBalance), domain.FormatMoney(r.FinalBalance))
	if r.InitialBalance.Equal(r.FinalBalance) {
		fmt.Fprintln(w, "No updates were lost.")
	}
}
