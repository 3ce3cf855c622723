package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/adapter/repository/file"
)

func execute(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func decodeOutput[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	return v
}

func TestMenuThenQueries(t *testing.T) {
	dir := t.TempDir()

	session := strings.Join([]string{
		"1", "", "Ada Lovelace", "36", "+44 20 7946 0000", "12 St James's Square, London", "", "checking", "250.00",
		"3", "ACC001", "50.00",
		"13",
	}, "\n") + "\n"

	out, err := execute(t, dir, session, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Account created.")

	out, err = execute(t, dir, "", "accounts")
	require.NoError(t, err)
	accounts := decodeOutput[[]dto.AccountResponse](t, out)
	require.Len(t, accounts, 1)
	assert.Equal(t, "ACC001", accounts[0].Number)
	assert.Equal(t, "300.00", accounts[0].Balance)

	out, err = execute(t, dir, "", "statement", "acc001")
	require.NoError(t, err)
	st := decodeOutput[dto.StatementResponse](t, out)
	assert.Equal(t, "300.00", st.TotalCredits)
	assert.Len(t, st.Entries, 2)

	out, err = execute(t, dir, "", "reconcile")
	require.NoError(t, err)
	results := decodeOutput[[]dto.ReconciliationResponse](t, out)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsReconciled)
}

func TestReconcile_Inconsistent(t *testing.T) {
	dir := t.TempDir()
	accounts := "ACC001|Ada Lovelace|36|+44 20 7946 0000|London|CUS001|Regular|Checking|999.00\n"
	entries := "TXN001|ACC001|Deposit|250.00|250.00|01-02-2026 10:00:00 AM\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, file.AccountsFile), []byte(accounts), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file.EntriesFile), []byte(entries), 0o644))

	out, err := execute(t, dir, "", "reconcile")
	require.ErrorIs(t, err, errInconsistent)

	results := decodeOutput[[]dto.ReconciliationResponse](t, out)
	require.Len(t, results, 1)
	assert.False(t, results[0].IsReconciled)
	assert.Equal(t, "749.00", results[0].Difference)
}

func TestSimulate(t *testing.T) {
	dir := t.TempDir()
	accounts := "ACC001|Ada Lovelace|36|+44 20 7946 0000|London|CUS001|Regular|Checking|250.00\n"
	entries := "TXN001|ACC001|Deposit|250.00|250.00|01-02-2026 10:00:00 AM\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, file.AccountsFile), []byte(accounts), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file.EntriesFile), []byte(entries), 0o644))

	out, err := execute(t, dir, "", "simulate", "--account", "ACC001", "--workers", "8", "--rounds", "5", "--amount", "2.50")
	require.NoError(t, err)

	result := decodeOutput[simulationJSON](t, out)
	assert.Equal(t, "250.00", result.InitialBalance)
	assert.Equal(t, "250.00", result.FinalBalance)
	assert.EqualValues(t, 40, result.Deposits)
	assert.EqualValues(t, 40, result.Withdrawals)
	assert.Zero(t, result.Failures)

	data, err := os.ReadFile(filepath.Join(dir, file.EntriesFile))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 81)
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "", "statement", "ACC404")
	assert.Error(t, err)

	_, err = execute(t, dir, "", "simulate")
	assert.ErrorContains(t, err, "account")

	_, err = execute(t, dir, "", "simulate", "--account", "ACC001", "--amount", "abc")
	assert.ErrorContains(t, err, "--amount")
}
