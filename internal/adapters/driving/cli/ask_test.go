package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_PrintsAnswerSourcesAndDisclaimer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "What does the constitution say about due process?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "According to Article II, Section 7")
	assert.Contains(t, buf.String(), "Sources:")
	assert.Contains(t, buf.String(), "Oklahoma Constitution - Article II, Section 7")
	assert.Contains(t, buf.String(), disclaimer)
	assert.Contains(t, buf.String(), "tokens used: 120")
}

func TestAskCmd_FlagsArePassedThrough(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := askService.(*mockAskService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"ask",
		"--session", "sess-1",
		"--model", "gpt-4",
		"--sources", "5",
		"--source", "constitution",
		"a question",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		askSession = ""
		askModel = ""
		askSourceCount = 0
		askSource = "all"
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "sess-1", mock.lastReq.SessionID)
	assert.Equal(t, domain.ModelQuality, mock.lastReq.Model)
	assert.Equal(t, 5, mock.lastReq.SourceCount)
	assert.Equal(t, domain.SourceConstitution, mock.lastReq.Source)
	assert.Contains(t, buf.String(), "Session: sess-1")
}

func TestAskCmd_UngroundedAnswerOmitsSources(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	askService.(*mockAskService).answer = &domain.Answer{
		Text:  "I don't have enough information to answer that.",
		Model: domain.ModelFast,
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "something obscure"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "Sources:")
	assert.Contains(t, buf.String(), disclaimer)
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "a question"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Text\"")
	assert.Contains(t, buf.String(), "\"TokensUsed\"")
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	oldService := askService
	askService = nil
	defer func() {
		askService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "q"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ask service not configured")
}

func TestAskCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	askService.(*mockAskService).err = domain.ErrInvalidSession

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "q"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}
