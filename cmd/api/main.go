package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var Version = "dev"

// envFlag selects configs/<env>.yaml; empty means PAYGATE_ENV
var envFlag string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "paygate",
		Short:        "Payment gateway with accounts, payments and receipts",
		Version:      Version,
		SilenceUsage: true,
		// Running without a subcommand starts the server
		RunE: runServe,
	}

	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "",
		"configuration environment (development, test, production); defaults to PAYGATE_ENV")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	return rootCmd
}
