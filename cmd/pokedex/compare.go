package main

import (
	"github.com/spf13/cobra"

	apppokemon "pokedex-service/internal/app/pokemon"
)

func newCompareCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <name> <name> [name...]",
		Short: "Compare 2 to 6 Pokemon",
		Long:  "Compares base stats, height and weight, and groups the Pokemon by type.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, opts, func(svc *apppokemon.Service) error {
				result, err := svc.Compare(cmd.Context(), args)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, result)
			})
		},
	}
}
