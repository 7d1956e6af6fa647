package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/halcyon-ops/hourglass/pkg/cli/config"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestReportDenylist(t *testing.T) {
	t.Run("Merges flags with the YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.yml")
		gt.NoError(t, os.WriteFile(path, []byte("excluded_technicians:\n  - Old Account\n  - Test User\n"), 0600))

		cfg := config.Report{
			ConfigPath: path,
			Exclude:    []string{"Jane Doe"},
		}

		names, err := cfg.Denylist()
		gt.NoError(t, err)
		gt.Equal(t, names, []types.TechnicianName{"Jane Doe", "Old Account", "Test User"})
	})

	t.Run("Works without a file", func(t *testing.T) {
		cfg := config.Report{Exclude: []string{"Jane Doe"}}
		names, err := cfg.Denylist()
		gt.NoError(t, err)
		gt.A(t, names).Length(1)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		cfg := config.Report{ConfigPath: "/does/not/exist.yml"}
		_, err := cfg.Denylist()
		gt.Error(t, err)
	})

	t.Run("Malformed YAML is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.yml")
		gt.NoError(t, os.WriteFile(path, []byte("excluded_technicians: {{"), 0600))

		cfg := config.Report{ConfigPath: path}
		_, err := cfg.Denylist()
		gt.Error(t, err)
	})
}
