package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

func TestProcessCmd_RequiresConversationID(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"process"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestProcessCmd_ReportsQuestionsAnalysed(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.conversations.processed = 5

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"process", "12"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "5 questions analysed")
}

func TestResultsCmd_PrintsResults(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.results.set = &domain.ResultSet{
		DomainName: "Support",
		Filename:   "chat.txt",
		Total:      1,
		Results: []domain.Result{
			{
				QuestionText: "How do I reset my password?",
				Answer:       "Use the forgot password link.",
				Confidence:   0.91,
				Leads:        []string{"auth"},
			},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"results", "12"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Support / chat.txt (1 results)")
	assert.Contains(t, buf.String(), "91%")
	assert.Contains(t, buf.String(), "Use the forgot password link.")
	assert.Contains(t, buf.String(), "#auth")
}

func TestResultsCmd_EmptySet(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.results.set = &domain.ResultSet{DomainName: "Support", Filename: "chat.txt"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"results", "12"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No results were extracted")
}
