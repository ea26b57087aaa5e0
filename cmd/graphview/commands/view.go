package commands

import (
	"github.com/spf13/cobra"

	"graphview/internal/viewer"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer window",
		Run: func(cmd *cobra.Command, args []string) {
			viewer.New(appCtx).Run()
		},
	}
}
