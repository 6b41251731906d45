package commands

import (
	"fmt"

	"github.com/ByteMirror/worldheight/log"
	"github.com/spf13/cobra"
)

// ResetCmd restores and saves the default configuration.
var ResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default world height configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Initialize(false)
		defer log.Close()

		store, err := openStore()
		if err != nil {
			return err
		}
		store.ResetToDefaults()
		if err := store.Save(); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		return printStore(cmd.OutOrStdout(), store)
	},
}
