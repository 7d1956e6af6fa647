package config

import (
	"log/slog"
	"os"

	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Report holds report configuration: the technician denylist applied to the
// hours grid (terminated or duplicate accounts that must not render).
type Report struct {
	ConfigPath string
	Exclude    []string
}

// reportFile is the YAML layout of --report-config
type reportFile struct {
	ExcludedTechnicians []string `yaml:"excluded_technicians"`
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-config",
			Usage:       "Path to a YAML file with excluded technician names",
			Category:    "Report",
			Sources:     cli.EnvVars("HOURGLASS_REPORT_CONFIG"),
			Destination: &r.ConfigPath,
		},
		&cli.StringSliceFlag{
			Name:        "exclude-technician",
			Usage:       "Technician name to exclude from the hours grid (repeatable)",
			Category:    "Report",
			Sources:     cli.EnvVars("HOURGLASS_EXCLUDE_TECHNICIAN"),
			Destination: &r.Exclude,
		},
	}
}

// Denylist merges the flag values with the optional YAML file.
func (r *Report) Denylist() ([]types.TechnicianName, error) {
	names := make([]types.TechnicianName, 0, len(r.Exclude))
	for _, n := range r.Exclude {
		names = append(names, types.TechnicianName(n))
	}

	if r.ConfigPath != "" {
		data, err := os.ReadFile(r.ConfigPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read report config",
				goerr.V("path", r.ConfigPath))
		}

		var file reportFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse report config",
				goerr.V("path", r.ConfigPath))
		}
		for _, n := range file.ExcludedTechnicians {
			names = append(names, types.TechnicianName(n))
		}
	}

	return names, nil
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_path", r.ConfigPath),
		slog.Int("excluded", len(r.Exclude)),
	)
}
