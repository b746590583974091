package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/hsv-picker-mcp/internal/config"
	"github.com/ironsheep/hsv-picker-mcp/internal/logger"
	"github.com/ironsheep/hsv-picker-mcp/internal/server"
)

type rootFlags struct {
	configPath string
	logLevel   string
	humanLogs  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "hsv-picker-mcp",
		Short: "MCP server exposing an HSV(A) color picker",
		Long: "hsv-picker-mcp serves a hue slider, a saturation/value plane and an alpha\n" +
			"slider over the MCP protocol on stdin/stdout. Logs go to stderr.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, flags, cfg)
			if err != nil {
				return err
			}

			log.WithFields(map[string]any{
				"version": Version,
				"built":   BuildTime,
				"commit":  GitCommit,
			}).Debug("starting server")

			srv := server.New(cfg, log, Version)
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides config and "+logger.EnvLevel+")")
	cmd.PersistentFlags().BoolVar(&flags.humanLogs, "human-logs", false, "Write console-formatted logs instead of JSON")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSwatchCmd(flags))

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newLogger resolves the level from the flag, then the environment, then
// the config file.
func newLogger(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) (*logger.Logger, error) {
	level := flags.logLevel
	if level == "" {
		level = logger.LevelFromEnv(cfg.Log.Level)
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.humanLogs || cfg.Log.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
}
