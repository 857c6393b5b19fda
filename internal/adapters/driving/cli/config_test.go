package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	commands := configCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set-server")
	assert.Contains(t, commandNames, "set-rate")
}

func TestConfigShowCmd_PrintsDefaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "http://localhost:8000")
	assert.Contains(t, buf.String(), "unlimited")
}

func TestConfigSetServerCmd_Saves(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set-server", "http://backend:9000/"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.NotNil(t, mocks.config.saved)
	assert.Equal(t, "http://backend:9000", mocks.config.saved.ServerURL)
	assert.Contains(t, buf.String(), "Server URL set to http://backend:9000")
}

func TestConfigSetServerCmd_RejectsInvalidURL(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set-server", "not a url"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Nil(t, mocks.config.saved)
}

func TestConfigSetRateCmd_Saves(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set-rate", "2.5"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.NotNil(t, mocks.config.saved)
	assert.Equal(t, 2.5, mocks.config.saved.RequestsPerSecond)
	assert.GreaterOrEqual(t, mocks.config.saved.Burst, 1)
}

func TestConfigSetRateCmd_ZeroDisables(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set-rate", "0"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.NotNil(t, mocks.config.saved)
	assert.Contains(t, buf.String(), "Request pacing disabled")
}

func TestConfigSetRateCmd_RejectsNegative(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set-rate", "--", "-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Nil(t, mocks.config.saved)
}
