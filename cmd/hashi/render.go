package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashi/codec"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Print a puzzle without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0], a.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), codec.Render(b))
			return err
		},
	}
}
