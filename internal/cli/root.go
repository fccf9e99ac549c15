package cli

import (
	"fmt"

	"supply_checker/internal/infrastructure/configloader"
	"supply_checker/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	cfg       *configloader.Config
	zapLogger *zap.Logger
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "supply_checker",
	Short: "Cross-chain token supply and price API",
	Long: `supply_checker reads the token totalSupply on every configured network,
sums the scaled values and serves them together with the last market price.

Without a subcommand the HTTP API is started.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = configloader.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		zapLogger, err = logger.NewZapLogger(cfg.Logging.Level)
		if err != nil {
			return err
		}
		logger.Init(zapLogger, cfg.Logging.Level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLogger != nil {
			_ = zapLogger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "supply_checker %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (compiled-in defaults when empty)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)
}

func SetVersion(v string) {
	version = v
}

func Execute() error {
	return rootCmd.Execute()
}

func Root() *cobra.Command {
	return rootCmd
}
