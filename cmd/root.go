package cmd

import (
	"fmt"
	"os"

	"wardrobe-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wardrobe-manager",
	Short: "Wardrobe Manager Service",
	Long: `Wardrobe Manager resolves the live Habbo figure data into a classified
clothing catalog and serves it over HTTP. It falls back to an embedded
data set when the upstream endpoints are unreachable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives ISO8601 timestamps for CLI output.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
