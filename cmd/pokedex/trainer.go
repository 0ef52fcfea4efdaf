package main

import (
	"github.com/spf13/cobra"

	apppokemon "pokedex-service/internal/app/pokemon"
)

func newTrainerCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trainer <name>",
		Short: "List a trainer's signature Pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, opts, func(svc *apppokemon.Service) error {
				records, err := svc.Trainer(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, records)
			})
		},
	}
}
