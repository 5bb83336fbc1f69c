package analysis_test

import (
	"testing"

	"fjacquet/event-budget/cmd/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensitivityCommand_Metadata(t *testing.T) {
	assert.Equal(t, "sensitivity", analysis.Cmd.Use)
	assert.Contains(t, analysis.Cmd.Aliases, "matrix")
	assert.Contains(t, analysis.Cmd.Long, "5x5 grid")

	driver := analysis.Cmd.Flags().Lookup("driver")
	require.NotNil(t, driver)
	assert.Equal(t, "d", driver.Shorthand)
}
