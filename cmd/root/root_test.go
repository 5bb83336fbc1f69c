package root_test

import (
	"testing"

	"fjacquet/event-budget/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "event-budget", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "event budget")
	assert.Contains(t, root.Cmd.Long, "5x5 grid")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	if root.Cmd.PersistentFlags().Lookup("file") == nil {
		root.Init()
	}

	fileFlag := root.Cmd.PersistentFlags().Lookup("file")
	if assert.NotNil(t, fileFlag) {
		assert.Equal(t, "f", fileFlag.Shorthand)
		assert.Equal(t, "", fileFlag.DefValue)
	}
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("log-level"))
}

func TestLoadSession_RequiresInitialization(t *testing.T) {
	original := root.AppContainer
	root.AppContainer = nil
	defer func() { root.AppContainer = original }()

	_, err := root.LoadSession()
	assert.Error(t, err)
	assert.Nil(t, root.GetContainer())
}
