package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/core/domain"
)

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, "src", s.SourceDir)
	assert.Equal(t, "build", s.BuildDir)
	assert.Equal(t, "test", s.TestDir)
	assert.Equal(t, 8000, s.Port)
	assert.Equal(t, []string{"Gruntfile.js", "test/*.js", "test/unit/*.js"}, s.UtilFiles)
	require.NoError(t, s.Validate())

	s.UtilFiles[0] = "mutated"
	assert.Equal(t, "Gruntfile.js", domain.DefaultUtilFiles[0])
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *domain.Settings)
	}{
		{"Empty source", func(s *domain.Settings) { s.SourceDir = "" }},
		{"Empty build", func(s *domain.Settings) { s.BuildDir = "" }},
		{"Empty metadata", func(s *domain.Settings) { s.MetadataFile = "" }},
		{"Port zero", func(s *domain.Settings) { s.Port = 0 }},
		{"Port too large", func(s *domain.Settings) { s.Port = 70000 }},
		{"Negative timeout", func(s *domain.Settings) { s.TestTimeout = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSettings()
			tt.modify(&s)
			require.ErrorContains(t, s.Validate(), domain.ErrInvalidSettings.Error())
		})
	}
}
