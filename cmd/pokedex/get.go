package main

import (
	"github.com/spf13/cobra"

	apppokemon "pokedex-service/internal/app/pokemon"
)

func newGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name-or-id>",
		Short: "Get a single Pokemon",
		Long:  "Fetches a Pokemon by name or national dex number, with its species details.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, opts, func(svc *apppokemon.Service) error {
				record, err := svc.Lookup(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, record)
			})
		},
	}
}
