package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anmacmillan/pensionloss/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pensionloss",
	Short: "Pension loss calculator for employment tribunal claims",
	Long: "Computes the value of lost pension rights following dismissal, using\n" +
		"either the simplified contributions method or the substantial-loss\n" +
		"method with demo actuarial multiplier tables, and grosses the award\n" +
		"up for tax.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
