package report_test

import (
	"testing"

	"fjacquet/event-budget/cmd/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand(t *testing.T) {
	assert.Equal(t, "report", report.Cmd.Use)

	format := report.Cmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
	assert.Contains(t, format.Usage, "json")
	assert.Contains(t, format.Usage, "yaml")
}
