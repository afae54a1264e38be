package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.InputRoot)
	assert.Equal(t, "database/BULK-QUIZ-INSERTS.sql", cfg.OutputPath)
	assert.Equal(t, []string{".pptx", ".ppt"}, cfg.Extensions)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "development", cfg.Logger.Env)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	body := `input_root: decks
output_path: out/quizzes.sql
extensions: [PPTX]
logger:
  level: debug
  env: production
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pptquiz.yaml"), []byte(body), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "decks", cfg.InputRoot)
	assert.Equal(t, "out/quizzes.sql", cfg.OutputPath)
	assert.Equal(t, []string{".pptx"}, cfg.Extensions)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "production", cfg.Logger.Env)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PPTQUIZ_INPUT_ROOT", "/srv/decks")
	t.Setenv("PPTQUIZ_LOGGER_LEVEL", "warn")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/decks", cfg.InputRoot)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pptquiz.yaml"), []byte("input_root: [unclosed"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    []string
		wantErr bool
	}{
		{
			name: "normalises extensions",
			cfg:  Config{InputRoot: "data", OutputPath: "out.sql", Extensions: []string{"PPTX", " .Ppt ", ".pptx"}},
			want: []string{".pptx", ".ppt"},
		},
		{
			name: "splits comma list",
			cfg:  Config{InputRoot: "data", OutputPath: "out.sql", Extensions: []string{"pptx,ppt"}},
			want: []string{".pptx", ".ppt"},
		},
		{
			name:    "empty input root",
			cfg:     Config{OutputPath: "out.sql", Extensions: []string{".pptx"}},
			wantErr: true,
		},
		{
			name:    "empty output path",
			cfg:     Config{InputRoot: "data", OutputPath: "  ", Extensions: []string{".pptx"}},
			wantErr: true,
		},
		{
			name:    "no extensions",
			cfg:     Config{InputRoot: "data", OutputPath: "out.sql", Extensions: []string{" , "}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Extensions)
		})
	}
}
