package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	return &Config{
		Log:          LogConfig{Level: "info", Format: "text"},
		Display:      DisplayConfig{Locale: "en"},
		Inequalities: InequalitiesConfig{StreakThreshold: 3},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "no file uses defaults",
			want: defaults(),
		},
		{
			name: "valid config file with custom values",
			configContent: `database:
  path: /tmp/progress.db
log:
  level: debug
  format: json
  file: /tmp/mathlab.log
display:
  locale: lt
inequalities:
  streak_threshold: 5
`,
			want: &Config{
				Database:     DatabaseConfig{Path: "/tmp/progress.db"},
				Log:          LogConfig{Level: "debug", Format: "json", File: "/tmp/mathlab.log"},
				Display:      DisplayConfig{Locale: "lt"},
				Inequalities: InequalitiesConfig{StreakThreshold: 5},
			},
		},
		{
			name:          "environment overrides the file",
			configContent: "log:\n  level: warn\n",
			env: map[string]string{
				"MATHLAB_LOG_LEVEL":      "error",
				"MATHLAB_DB":             "/data/mathlab.db",
				"MATHLAB_DISPLAY_LOCALE": "lt",
			},
			want: &Config{
				Database:     DatabaseConfig{Path: "/data/mathlab.db"},
				Log:          LogConfig{Level: "error", Format: "text"},
				Display:      DisplayConfig{Locale: "lt"},
				Inequalities: InequalitiesConfig{StreakThreshold: 3},
			},
		},
		{
			name:              "invalid YAML format",
			configContent:     "log:\n  level: debug\n  invalid yaml format here [[[\n",
			wantErrorContains: []string{"configuration file found but could not be read"},
		},
		{
			name:          "unsupported locale",
			configContent: "display:\n  locale: fr\n",
			wantErrorContains: []string{
				"invalid configuration",
				"locale must be one of [en lt]",
			},
		},
		{
			name:          "streak threshold below one",
			configContent: "inequalities:\n  streak_threshold: 0\n",
			wantErrorContains: []string{
				"streak_threshold must be 1 or greater",
			},
		},
		{
			name:              "unknown log format",
			configContent:     "log:\n  format: xml\n",
			wantErrorContains: []string{"format must be one of [text json]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"MATHLAB_DB", "MATHLAB_DATABASE_PATH", "MATHLAB_LOG_LEVEL", "MATHLAB_DISPLAY_LOCALE"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			tempDir := t.TempDir()
			configPath := ""
			if tt.configContent != "" {
				configPath = filepath.Join(tempDir, "config.yaml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0o644))
			} else {
				t.Chdir(tempDir)
				t.Setenv("HOME", tempDir)
			}

			loader, err := NewLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	loader, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	_, err = loader.Load()
	assert.Error(t, err)
}
