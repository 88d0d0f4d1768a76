package apply

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loozhengyuan/calcsolver/internal/engine"
)

type options struct {
	quiet    bool
	template string
}

func New() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Applies the operators of a plan file in order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.NewFromFile(args[0])
			if err != nil {
				return fmt.Errorf("create engine: %w", err)
			}
			switch {
			case opts.template != "":
				e.SetTemplate(opts.template)
			case opts.quiet:
				e.SetTemplate("{{.Result}}")
			}
			if _, err := e.Execute(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("execute plan: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "prints only the result")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "renders output with a go template")
	return cmd
}
