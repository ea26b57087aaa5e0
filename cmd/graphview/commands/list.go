package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the function catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := appCtx.Catalog.Keys()
			for i, fn := range appCtx.Catalog.Functions() {
				spec := fn.Spec()
				fmt.Printf("%-10s %s\n", keys[i], spec.Name)
				fmt.Printf("           A: %s (default %g)\n", spec.ParamADescription, spec.ParamADefault)
				fmt.Printf("           B: %s (default %g)\n", spec.ParamBDescription, spec.ParamBDefault)
			}
			return nil
		},
	}
}
