package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/cli/config"
	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// cmdOvertime prints the overtime summary for a pay period to stdout. It is
// the same computation the /overtime-summary endpoint serves, useful for
// checking numbers without standing up the server.
func cmdOvertime() *cli.Command {
	var (
		mspCfg    config.MSPManager
		reportCfg config.Report
		offset    int64
	)

	flags := joinFlags(
		mspCfg.Flags(),
		reportCfg.Flags(),
		[]cli.Flag{
			&cli.Int64Flag{
				Name:        "offset",
				Usage:       "Pay period offset (0 is current, -1 is previous)",
				Value:       0,
				Destination: &offset,
			},
		},
	)

	return &cli.Command{
		Name:  "overtime",
		Usage: "Print the overtime summary for a pay period",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			source, err := mspCfg.Configure()
			if err != nil {
				return err
			}

			denylist, err := reportCfg.Denylist()
			if err != nil {
				return goerr.Wrap(err, "failed to load report configuration")
			}

			period := model.CalculatePeriod(time.Now(), int(offset))
			logger.Info("Computing overtime summary",
				slog.String("period", period.Label),
				slog.Int64("offset", offset),
			)

			reports := usecase.NewReports(source, denylist)
			summary, err := reports.BuildOvertimeSummary(ctx, period.StartDate, period.EndDate)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(map[string]any{
				"period":  period,
				"summary": summary,
			}); err != nil {
				return goerr.Wrap(err, "failed to encode summary")
			}

			return nil
		},
	}
}
