package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsundh/regidi/internal/keyspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, keyspace.DefaultFirstOnly, cfg.Table.FirstOnly)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Empty(t, cfg.Substitutions.Path)
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "full config",
			content: `
logger:
  level: debug
  is_json: true
substitutions:
  path: /etc/regidi/substitutions.csv
table:
  first_only: 4
maintenance:
  workers: 3
  bad_words_path: /etc/regidi/bad-words.txt
http:
  port: 9000
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logger.Level)
				assert.True(t, cfg.Logger.IsJSON)
				assert.Equal(t, "/etc/regidi/substitutions.csv", cfg.Substitutions.Path)
				assert.Equal(t, 4, cfg.Table.FirstOnly)
				assert.Equal(t, 3, cfg.Maintenance.Workers)
				assert.Equal(t, "/etc/regidi/bad-words.txt", cfg.Maintenance.BadWordsPath)
				assert.Equal(t, 9000, cfg.HTTP.Port)
			},
		},
		{
			name:    "partial config keeps defaults",
			content: "http:\n  port: 9001\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9001, cfg.HTTP.Port)
				assert.Equal(t, keyspace.DefaultFirstOnly, cfg.Table.FirstOnly)
				assert.Equal(t, "warn", cfg.Logger.Level)
			},
		},
		{
			name:    "first_only too large",
			content: "table:\n  first_only: 32\n",
			wantErr: true,
		},
		{
			name:    "negative workers",
			content: "maintenance:\n  workers: -1\n",
			wantErr: true,
		},
		{
			name:    "port out of range",
			content: "http:\n  port: 70000\n",
			wantErr: true,
		},
		{
			name:    "section set to null",
			content: "logger: null\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			content: "http: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, "regidi.yaml", tt.content))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Words(t *testing.T) {
	cfg := DefaultConfig()

	words, err := cfg.Words()
	require.NoError(t, err)
	assert.Contains(t, words, "tit")

	cfg.Maintenance.BadWordsPath = writeFile(t, "words.txt", "potato\n")
	words, err = cfg.Words()
	require.NoError(t, err)
	assert.Equal(t, []string{"potato"}, words)
}

func TestConfig_Codec(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.Codec().Substitutions().Len())

	cfg.Substitutions.Path = writeFile(t, "subs.csv", "")
	assert.Equal(t, 0, cfg.Codec().Substitutions().Len())
}
