package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashi/codec"
)

// output forms of the convert command
const (
	formText = "text"
	formYAML = "yaml"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a puzzle between the text and YAML forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0], a.logger)
			if err != nil {
				return err
			}
			switch to {
			case formText:
				return codec.FormatText(cmd.OutOrStdout(), b)
			case formYAML:
				return codec.EncodeYAML(cmd.OutOrStdout(), b)
			default:
				return fmt.Errorf("unknown form %q (want %s or %s)", to, formText, formYAML)
			}
		},
	}
	cmd.Flags().StringVar(&to, "to", formYAML, "output form: text or yaml")

	return cmd
}
