// Package main provides the pokedex CLI: one-shot catalog lookups over the same engine the service uses.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Look up Pokemon, compare them, and list trainer and region rosters",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "Output format (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.provider, "provider", "", "Data provider (pokeapi or fixture); defaults to $PROVIDER")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Catalog base URL; defaults to $POKEAPI_BASE_URL")

	rootCmd.AddCommand(
		newGetCmd(opts),
		newCompareCmd(opts),
		newTrainerCmd(opts),
		newRegionCmd(opts),
	)

	return rootCmd
}
