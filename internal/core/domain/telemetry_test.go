package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/taskrun/internal/core/domain"
)

func TestTaskStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.TaskStatus
		isTerminal bool
	}{
		{"Pending", domain.TaskStatusPending, false},
		{"Running", domain.TaskStatusRunning, false},
		{"Completed", domain.TaskStatusCompleted, true},
		{"Failed", domain.TaskStatusFailed, true},
		{"Skipped", domain.TaskStatusSkipped, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "INFO", domain.LogLevelInfo.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(42).String())
}
