package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/venv/internal/core/domain"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{bytes: 0, want: "0.00 MB"},
		{bytes: 1024 * 1024, want: "1.00 MB"},
		{bytes: 1536 * 1024, want: "1.50 MB"},
		{bytes: 12345678, want: "11.77 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatSize(tt.bytes))
		})
	}
}

func TestValidateEnvironmentName(t *testing.T) {
	valid := []string{"venv", ".venv", "my-env_3.12"}
	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			require.NoError(t, domain.ValidateEnvironmentName(name))
		})
	}

	invalid := []string{"", ".", "..", "a/b", "../escape"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			err := domain.ValidateEnvironmentName(name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrInvalidEnvironmentName.Error())
		})
	}
}

func TestMarkerConfig(t *testing.T) {
	t.Run("modern keys", func(t *testing.T) {
		cfg := domain.MarkerConfig{
			"home":                         "/usr/bin",
			"version":                      "3.12.1",
			"include-system-site-packages": "True",
		}
		assert.Equal(t, "/usr/bin", cfg.Home())
		assert.Equal(t, "3.12.1", cfg.Version())
		assert.True(t, cfg.SystemSitePackages())
	})

	t.Run("legacy version key", func(t *testing.T) {
		cfg := domain.MarkerConfig{"version_info": "3.8.10.final.0"}
		assert.Equal(t, "3.8.10.final.0", cfg.Version())
		assert.False(t, cfg.SystemSitePackages())
	})

	t.Run("nil config", func(t *testing.T) {
		var cfg domain.MarkerConfig
		assert.Empty(t, cfg.Home())
		assert.Empty(t, cfg.Version())
	})
}

func TestCommand_String(t *testing.T) {
	cmd := domain.Command{Name: "python3", Args: []string{"-m", "venv", "/tmp/x"}}
	assert.Equal(t, "python3 -m venv /tmp/x", cmd.String())
}

func TestDefaultConfigPaths(t *testing.T) {
	paths := domain.DefaultConfigPaths("/home/u/.config")
	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "config.yaml")
	assert.Contains(t, paths[1], "config.toml")
}
