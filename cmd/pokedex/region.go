package main

import (
	"github.com/spf13/cobra"

	apppokemon "pokedex-service/internal/app/pokemon"
)

func newRegionCmd(opts *globalOptions) *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "region <name>",
		Short: "List a page of a region's pokedex",
		Long:  "Lists Pokemon from a region's pokedex in entry order. Entries that cannot be fetched are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, opts, func(svc *apppokemon.Service) error {
				records, err := svc.Region(cmd.Context(), args[0], offset, limit)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, records)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", apppokemon.DefaultRegionLimit, "Maximum number of Pokemon to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pokedex entries to skip")

	return cmd
}
