package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/coresim/internal/application"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runSimulation(cmd *cobra.Command, cfg *viper.Viper) error {
	if err := loadSettings(cfg, cmd.Flags()); err != nil {
		return err
	}

	app, err := wireApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if err := app.closeTracing(context.Background()); err != nil {
			app.logger.WithError(err).Warn("flush traces")
		}
	}()

	ctx := cmd.Context()
	jobs, err := app.workload.Load(ctx)
	if err != nil {
		return fmt.Errorf("load workload: %w", err)
	}

	seed := app.settings.Seed
	if !app.settings.SeedSet {
		seed = app.clock.Now().UnixNano()
	}
	app.logger.WithFields(log.Fields{
		"seed": seed,
		"jobs": len(jobs),
	}).Info("starting simulation")

	report, err := app.simulator.Run(ctx, application.SimulateCommand{
		Jobs:            jobs,
		Policies:        app.settings.Policies,
		LeastLoadedMode: app.settings.LeastLoadedMode,
		Seed:            seed,
	})
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	if err := app.render(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if app.metrics != nil {
		if err := app.metrics.WriteTextfile(app.settings.MetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
