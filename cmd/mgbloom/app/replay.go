package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/brianolson/mgbloom"
	"github.com/brianolson/mgbloom/config"
	"github.com/brianolson/mgbloom/internal/trace"
)

var errMissingFlag = errors.New("missing required setting")

func newReplayCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay an address trace against a filter",
		Long: `Replay builds the filter described by --config (YAML) and applies the
trace in --trace, one "<op> [addr]" per line (set, unset, query, count,
clear). The summary is printed as JSON.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReplay(cmd, v)
		},
	}
	cmd.Flags().String("config", "", "Path to filter configuration file (YAML format)")
	cmd.Flags().String("trace", "", "Path to trace file")
	_ = v.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = v.BindPFlag("trace", cmd.Flags().Lookup("trace"))
	return cmd
}

func runReplay(cmd *cobra.Command, v *viper.Viper) error {
	configPath := v.GetString("config")
	tracePath := v.GetString("trace")
	if configPath == "" {
		return fmt.Errorf("%w: config", errMissingFlag)
	}
	if tracePath == "" {
		return fmt.Errorf("%w: trace", errMissingFlag)
	}

	logger, err := newLogger(v)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	filter, err := cfg.Build(mgbloom.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build filter: %w", err)
	}
	logger.Info("filter ready",
		zap.String("config", configPath),
		zap.Int("grains", filter.Len()),
		zap.Int("threshold", filter.Threshold()))

	f, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("failed to open trace: %w", err)
	}
	defer f.Close()
	ops, err := trace.Parse(f)
	if err != nil {
		return err
	}

	summary, err := trace.Replay(cmd.Context(), filter, ops, logger)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
