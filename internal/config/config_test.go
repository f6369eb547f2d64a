package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"role": "Data Scientist",
		"domain": "Machine Learning",
		"interview_type": "technical",
		"question_count": 7,
		"sessions_dir": "sessions",
		"export_pdf": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", cfg.Role)
	assert.Equal(t, "Machine Learning", cfg.Domain)
	assert.Equal(t, "technical", cfg.InterviewType)
	assert.Equal(t, 7, cfg.QuestionCount)
	assert.Equal(t, "sessions", cfg.SessionsDir)
	assert.True(t, cfg.ExportPDF)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfig(t, `{not json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "technical", cfg: Config{InterviewType: "technical"}},
		{name: "behavioral", cfg: Config{InterviewType: "behavioral"}},
		{name: "bad interview type", cfg: Config{InterviewType: "casual"}, wantErr: true},
		{name: "negative count", cfg: Config{QuestionCount: -1}, wantErr: true},
		{name: "dev env", cfg: Config{Env: "dev"}},
		{name: "bad env", cfg: Config{Env: "staging"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Role: "UX Designer"}
	defaults := Config{
		Role:          "Software Engineer",
		Domain:        "Backend Development",
		QuestionCount: 3,
		SessionsDir:   "out",
	}

	merged := cfg.MergeWithDefaults(defaults)

	// explicit value wins
	assert.Equal(t, "UX Designer", merged.Role)
	// empty fields take defaults
	assert.Equal(t, "Backend Development", merged.Domain)
	assert.Equal(t, 3, merged.QuestionCount)
	assert.Equal(t, "out", merged.SessionsDir)
}

func TestMergeWithDefaults_QuestionCountFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultQuestionCount, merged.QuestionCount)
}
