package initialize_test

import (
	"testing"

	"fjacquet/event-budget/cmd/initialize"

	"github.com/stretchr/testify/assert"
)

func TestInitCommand(t *testing.T) {
	assert.Equal(t, "init", initialize.Cmd.Use)
	assert.NotNil(t, initialize.Cmd.Flags().Lookup("sample"))
	assert.NotNil(t, initialize.Cmd.Flags().Lookup("force"))
	assert.NotNil(t, initialize.Cmd.Flags().Lookup("name"))
}
