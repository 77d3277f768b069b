package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "port flag should exist")
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_MissingServicesFailsValidation(t *testing.T) {
	oldSearch := searchService
	oldAsk := askService
	searchService = nil
	askService = nil
	defer func() {
		searchService = oldSearch
		askService = oldAsk
	}()

	err := runMCPServe(mcpServeCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating ports")
}
