// @title learnhub API
// @version 1.0
// @description 课程内容、匿名学习进度与测验轮换服务
// @host localhost:8080
// @BasePath /

package main

import (
	"fmt"
	"learnhub/internal/app"
	"learnhub/internal/config"
	"learnhub/pkg/logger"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	ConfigDir string
	Migrate   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "learnhub",
		Short:         "learnhub e-learning backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "configs", "directory containing config.yaml")
	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "run migrations on startup even in release mode")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newCoursesCommand(opts))
	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "run migrations on startup even in release mode")
	return cmd
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.ConfigDir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.ForceMigrate = true
			cfg.MigrateOnly = true

			application, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			logger.Log.Info("Database migration finished, exiting")
			return nil
		},
	}
}

func newCoursesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List discovered courses in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.ConfigDir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()

			registry := app.NewRegistry(cfg, log)
			registry.Discover(false)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tLEVEL\tMODULES\tTITLE")
			for _, s := range registry.Summaries() {
				course, _ := registry.CourseBySlug(s.Slug)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Slug, deref(s.Level), len(course.Modules), deref(s.Title))
			}
			return w.Flush()
		},
	}
}

func runServe(opts *rootOptions) error {
	cfg, err := config.LoadConfig(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ForceMigrate = opts.Migrate

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	return application.Run()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
