package commands

import (
	"github.com/ByteMirror/worldheight/log"
	"github.com/spf13/cobra"
)

// ShowCmd prints the validated configuration.
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current world height configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Initialize(false)
		defer log.Close()

		store, err := openStore()
		if err != nil {
			return err
		}
		return printStore(cmd.OutOrStdout(), store)
	},
}
