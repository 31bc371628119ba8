package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/iris-color-mcp/internal/colormodel"
	"github.com/ironsheep/iris-color-mcp/internal/config"
	"github.com/ironsheep/iris-color-mcp/internal/server"
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand starts the MCP server.
func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "iris-mcp",
		Short: "MCP server for color conversion",
		Long: `iris-mcp converts colors between HSV, RGB, CMYK and hex, adjusts them,
and associates them with pixel coordinates.

Without a subcommand it serves the MCP protocol over stdin/stdout;
configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  ` + config.EnvLogLevel + `=debug    Override the configured log level`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, cfgFile)
		},
	}
	rootCmd.SetVersionTemplate(versionText())
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the MCP protocol over stdin/stdout",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd, cfgFile)
			},
		},
		&cobra.Command{
			Use:   "convert <color>",
			Short: "Print a color in every color model",
			Long: `Print a color in every color model as JSON.

<color> is one of:
  #RRGGBB
  rgb:R,G,B       (0-255)
  hsv:H,S,V       (hue 0-360, saturation/value 0-100)
  cmyk:C,M,Y,K    (0-100)`,
			Args: cobra.ExactArgs(1),
			RunE: runConvert,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprint(cmd.OutOrStdout(), versionText())
			},
		},
	)

	return rootCmd
}

// run executes cmd and reports any error on its stderr. Errors from cobra
// itself (unknown commands, bad flags) are silenced by the root command, so
// this is the only place they are printed.
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func versionText() string {
	return fmt.Sprintf("iris-mcp %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit)
}

func runServe(cmd *cobra.Command, cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Logs go to stderr; stdout is for the MCP protocol.
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting iris-mcp",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.Version = Version
	srv := server.New(cfg, logger)
	if err := srv.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && err != context.Canceled {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := colormodel.Parse(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(c.Summary())
}

// newLogger builds a JSON logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
