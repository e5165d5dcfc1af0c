package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coursehub/catalog/internal/bootstrap"
	"github.com/coursehub/catalog/internal/server"
)

var defaultConfigPath = filepath.Join("configs", "config.yaml")

func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Course catalog and course resource API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations, seed an empty catalog and serve the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Load the course catalog file into an empty courses table",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed(cmd.Context(), configPath)
			},
		},
	)

	return rootCmd
}

func runServe(ctx context.Context, configPath string) error {
	srv, err := server.NewServer(contextOrBackground(ctx), configPath)
	if err != nil {
		return err
	}
	return srv.Run()
}

func runMigrate(ctx context.Context, configPath string) error {
	ctx = contextOrBackground(ctx)
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	return bootstrap.RunMigrations(ctx, cfg, pool, lgr)
}

func runSeed(ctx context.Context, configPath string) error {
	ctx = contextOrBackground(ctx)
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := bootstrap.RunMigrations(ctx, cfg, pool, lgr); err != nil {
		return err
	}

	inserted, err := bootstrap.SeedCatalog(ctx, cfg, pool, lgr)
	if err != nil {
		return err
	}
	lgr.Info().Int64("inserted", inserted).Msg("Seed finished")
	return nil
}

// cobra leaves the command context nil unless ExecuteContext is used
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
