package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_LongDescription(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "interactive terminal user interface")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestSetTUIConfig(t *testing.T) {
	old := tuiConfig
	defer func() { tuiConfig = old }()

	config := &TUIConfig{InterviewService: &mockInterviewService{}}
	SetTUIConfig(config)

	assert.Same(t, config, tuiConfig)
}

func TestTUICmd_HelpOutput(t *testing.T) {
	// Cobra keeps flag values between executions.
	defer func() { _ = tuiCmd.Flags().Set("help", "false") }()

	output, err := runCommand(t, "", "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, output, "interactive terminal user interface")
	assert.Contains(t, output, "Ctrl+N")
}

func TestTUICmd_NotConfigured(t *testing.T) {
	old := tuiConfig
	defer func() { tuiConfig = old }()

	tests := []struct {
		name   string
		config *TUIConfig
	}{
		{name: "no config", config: nil},
		{name: "no interview service", config: &TUIConfig{SettingsService: &mockSettingsService{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTUIConfig(tt.config)

			_, err := runCommand(t, "", "tui")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "interview service not configured")
		})
	}
}
