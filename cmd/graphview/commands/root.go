package commands

import (
	"github.com/spf13/cobra"

	"graphview/internal/app"
)

var (
	chartWidth  int
	chartHeight int
	appCtx      *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "graphview",
		Short: "Interactive function graph viewer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.New(app.Config{
				ChartWidth:  chartWidth,
				ChartHeight: chartHeight,
			})
		},
	}

	root.PersistentFlags().IntVar(&chartWidth, "width", app.DefaultChartWidth, "chart width in pixels")
	root.PersistentFlags().IntVar(&chartHeight, "height", app.DefaultChartHeight, "chart height in pixels")

	root.AddCommand(listCmd(), plotCmd(), viewCmd())
	return root.Execute()
}
