// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/plotpca/config"
	"github.com/katalvlaran/plotpca/dataset"
	"github.com/katalvlaran/plotpca/pipeline"
	"github.com/katalvlaran/plotpca/plot"
)

// envPrefix namespaces environment overrides: PLOTPCA_OUT, PLOTPCA_LOG_LEVEL, ...
const envPrefix = "PLOTPCA"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "plotpca",
		Short:         "PCA scatter plots of intensity and fold-change tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newInitCmd(), newVersionCmd())

	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Filter constant features, project and write one chart per dataset",
		Long: `Filter constant features, project and write one chart per dataset.

Every flag can also be set through the environment, e.g. PLOTPCA_OUT=charts
or PLOTPCA_LOG_LEVEL=debug. Flags win over the environment, which wins over
the configuration file.`,
		Args: cobra.NoArgs,
		RunE: runPipeline,
	}
	cmd.Flags().StringP("config", "c", "plotpca.yaml", "run configuration file")
	cmd.Flags().StringP("out", "o", "", "output directory (overrides output_dir)")
	cmd.Flags().String("format", "", "png or svg (overrides format)")
	cmd.Flags().String("method", "", "svd or eigen (overrides method)")
	cmd.Flags().String("log-level", "info", "debug, info, warn or error")

	return cmd
}

// runSettings layers flags over PLOTPCA_* environment variables.
func runSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	v, err := runSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return err
	}
	if s := v.GetString("out"); s != "" {
		cfg.OutputDir = s
	}
	if s := v.GetString("format"); s != "" {
		cfg.Format = s
	}
	if s := v.GetString("method"); s != "" {
		cfg.Method = s
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	descs, err := cfg.Descriptors(dataset.WithLogger(logger))
	if err != nil {
		return err
	}
	format, err := plot.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	renderer, err := plot.NewChartRenderer(cfg.OutputDir,
		plot.WithFormat(format),
		plot.WithSize(cfg.Width, cfg.Height),
		plot.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	pcaOpts, err := cfg.PCAOptions()
	if err != nil {
		return err
	}
	proc, err := pipeline.NewProcessor(renderer,
		pipeline.WithLogger(logger),
		pipeline.WithLabelPrefix(cfg.LabelPrefix),
		pipeline.WithPCAOptions(pcaOpts...),
	)
	if err != nil {
		return err
	}

	logger.Info("run started", "datasets", len(descs), "method", cfg.Method, "out", cfg.OutputDir)
	outs, runErr := proc.Run(cmd.Context(), descs)
	fmt.Fprint(cmd.OutOrStdout(), renderSummary(outs, renderer.Path))
	if runErr != nil {
		return runErr
	}
	logger.Info("run finished", "charts", len(outs))

	return nil
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example configuration for the eight canonical tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "plotpca.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.Example()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.ok.Render("wrote ")+path)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the plotpca version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "plotpca "+version)
		},
	}
}
