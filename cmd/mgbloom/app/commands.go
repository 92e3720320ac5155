// Package app provides the commands of the mgbloom tool.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes environment overrides, e.g. MGBLOOM_CONFIG.
const EnvPrefix = "MGBLOOM"

// NewRootCmd creates the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:               "mgbloom",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Multi-grain Bloom filter trace replayer",
		Long: `mgbloom builds a multi-grain Bloom filter from a YAML layout and
replays address traces against it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	// binding a flag that was just defined cannot fail
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(newReplayCmd(v))
	return rootCmd
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	if v.GetBool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
