package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loozhengyuan/calcsolver/internal/cmd/apply"
	"github.com/loozhengyuan/calcsolver/internal/cmd/eval"
	"github.com/loozhengyuan/calcsolver/internal/cmd/version"
)

func New() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Applies calculator operator tiles to a running value.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	cmd.AddCommand(apply.New())
	cmd.AddCommand(eval.New())
	cmd.AddCommand(version.New())
	return cmd, nil
}
