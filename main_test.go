package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/store"
	"fjacquet/event-budget/internal/suggestion"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so state does not leak
// between executions of the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(root.Cmd)

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(io.Discard)
	root.Cmd.SetArgs(append([]string{"--log-level=error"}, args...))
	err := root.Cmd.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("BUDGET_AI_ENABLED", "false")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("BUDGET_CSV_DELIMITER", ",")
	return filepath.Join(t.TempDir(), "budget.yaml")
}

func driverID(t *testing.T, path string) string {
	t.Helper()
	doc, err := store.NewDocumentStore(path, nil).Load()
	require.NoError(t, err)
	return doc.DriverID
}

func TestCLI_BudgetLifecycle(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "init", "--sample", "--name", "Julebord 2024", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Opprettet")

	_, err = execute(t, "init", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = execute(t, "summary", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Julebord 2024")
	assert.Contains(t, out, "kr 30 000")
	assert.Contains(t, out, "Variable kostnader")

	out, err = execute(t, "sensitivity", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Nå (50)")
	assert.Contains(t, out, "Mat og drikke")

	out, err = execute(t, "item", "add", "-c", "expense", "-t", "fixed", "-n", "Lyd og lys", "-a", "30000", "-f", path)
	require.NoError(t, err)
	soundID := strings.TrimSpace(out)
	require.NotEmpty(t, soundID)

	out, err = execute(t, "summary", "--totals-only", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kr 0")

	_, err = execute(t, "item", "update", "-f", path, soundID, "amount", "--", "-5")
	require.NoError(t, err)
	out, err = execute(t, "summary", "--totals-only", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kr 30 000", "negative amount is clamped to zero")

	_, err = execute(t, "item", "update", soundID, "quantity", "5", "-f", path)
	assert.Error(t, err, "quantity does not apply to fixed lines")

	_, err = execute(t, "item", "update", "missing", "name", "x", "-f", path)
	assert.Error(t, err)

	_, err = execute(t, "project", "--location", "Bergen", "-f", path)
	require.NoError(t, err)
	out, err = execute(t, "project", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Bergen")

	csvPath := filepath.Join(t.TempDir(), "out.csv")
	_, err = execute(t, "export", "-o", csvPath, "-f", path)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Kategori,Type,Navn,Antall,Pris per enhet,Belop"))
	assert.Contains(t, string(data), "Lyd og lys")

	out, err = execute(t, "report", "--format", "json", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Budsjett - Julebord 2024"`)

	_, err = execute(t, "suggest", "-d", "Julebord", "-f", path)
	assert.ErrorIs(t, err, suggestion.ErrDisabled)

	_, err = execute(t, "item", "delete", driverID(t, path), "-f", path)
	require.NoError(t, err)
	assert.Empty(t, driverID(t, path))

	out, err = execute(t, "sensitivity", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "mangler data")
}

func TestCLI_SelectDriver(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "init", "--sample", "-f", path)
	require.NoError(t, err)
	first := driverID(t, path)

	out, err := execute(t, "item", "add", "-c", "income", "-t", "variable", "-n", "VIP-billett", "-q", "10", "-p", "2500", "-f", path)
	require.NoError(t, err)
	vip := strings.TrimSpace(out)

	out, err = execute(t, "sensitivity", "--driver", vip, "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Sensitivitetsanalyse: VIP-billett")
	assert.Equal(t, vip, driverID(t, path))

	out, err = execute(t, "sensitivity", "--driver", "typo", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Sensitivitetsanalyse: VIP-billett")
	assert.Equal(t, vip, driverID(t, path), "an unknown id keeps the chosen driver")

	_, err = execute(t, "item", "delete", vip, "-f", path)
	require.NoError(t, err)
	assert.Equal(t, first, driverID(t, path), "driver moves back to the remaining candidate")
}

func TestCLI_ProjectDates(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "init", "-f", path)
	require.NoError(t, err)

	out, err := execute(t, "project", "--start", "01.06.2025", "--end", "3.6.2025", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-01 – 2025-06-03 (3 dager)")

	doc, err := store.NewDocumentStore(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", doc.Project.StartDate)

	_, err = execute(t, "project", "--end", "31.05.2025", "-f", path)
	assert.Error(t, err, "end before start is rejected")

	_, err = execute(t, "project", "--start", "i morgen", "-f", path)
	assert.Error(t, err)

	doc, err = store.NewDocumentStore(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", doc.Project.EndDate, "rejected edits are not saved")
}
