package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graphview/internal/domain"
	"graphview/internal/render"
)

func plotCmd() *cobra.Command {
	var (
		function string
		a, b     float64
		xMin     float64
		xMax     float64
		out      string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a function to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := appCtx.Catalog.Lookup(function)
			if !ok {
				return fmt.Errorf("%w: %q (try 'graphview list')", domain.ErrUnknownFunction, function)
			}
			spec := fn.Spec()
			if !cmd.Flags().Changed("a") {
				a = spec.ParamADefault
			}
			if !cmd.Flags().Changed("b") {
				b = spec.ParamBDefault
			}

			plot, err := appCtx.Plotter.Compute(fn, domain.DomainRequest{
				XMin: xMin, XMax: xMax, A: a, B: b,
			})
			if err != nil {
				return err
			}
			raw, err := render.PNG(plot, appCtx.Config.ChartWidth, appCtx.Config.ChartHeight)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return err
			}
			if plot.Annotation != "" {
				fmt.Println(plot.Annotation)
			}
			fmt.Printf("Wrote %s (%d points)\n", out, len(plot.X))
			return nil
		},
	}

	cmd.Flags().StringVarP(&function, "function", "f", "", "function to plot (key or full name)")
	cmd.Flags().Float64Var(&a, "a", 0, "parameter A (default per function)")
	cmd.Flags().Float64Var(&b, "b", 0, "parameter B (default per function)")
	cmd.Flags().Float64Var(&xMin, "xmin", 0, "lower bound of the plot domain")
	cmd.Flags().Float64Var(&xMax, "xmax", 10, "upper bound of the plot domain")
	cmd.Flags().StringVarP(&out, "out", "o", "graph.png", "output PNG path")
	_ = cmd.MarkFlagRequired("function")

	return cmd
}
