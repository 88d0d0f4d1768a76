package eval

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loozhengyuan/calcsolver/internal/engine"
)

type options struct {
	start int
	quiet bool
}

func New() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "eval [--start N] [--] TILE...",
		Short: "Applies operator tiles given as arguments.",
		Long: `Applies operator tiles given as arguments.

Tiles use the notation +N, -N, *N, /N, N (insert digit) and <<.
Tiles that start with '-' must follow '--'.`,
		Example: "  calc eval --start 2 -- +8 '*3' '<<'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &engine.Plan{
				Version: engine.PlanVersion,
				Start:   opts.start,
				Steps:   make([]engine.Step, 0, len(args)),
			}
			for _, a := range args {
				p.Steps = append(p.Steps, engine.Step{Tile: a})
			}

			e, err := engine.New(p)
			if err != nil {
				return fmt.Errorf("create engine: %w", err)
			}
			if opts.quiet {
				e.SetTemplate("{{.Result}}")
			}
			if _, err := e.Execute(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("execute tiles: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().IntVarP(&opts.start, "start", "s", 0, "starting value")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "prints only the result")
	return cmd
}
