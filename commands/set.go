package commands

import (
	"fmt"

	"github.com/ByteMirror/worldheight/editor"
	"github.com/ByteMirror/worldheight/log"
	"github.com/spf13/cobra"
)

var (
	maxHeightFlag int
	seaLevelFlag  int
	minYFlag      int
)

// SetCmd edits the configuration the same way the interactive editor does
// and saves it.
var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the build limit or sea level",
	Long: `Change the build limit or sea level. Values are clamped to their
allowed ranges and the sea level is kept at least 10 blocks below the build
limit. The floor is locked at -64.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Initialize(false)
		defer log.Close()

		flags := cmd.Flags()
		if !flags.Changed("max-height") && !flags.Changed("sea-level") && !flags.Changed("min-y") {
			return cmd.Help()
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		session := editor.Open(store)
		if flags.Changed("max-height") {
			session.SetMaxWorldHeight(maxHeightFlag)
		}
		if flags.Changed("sea-level") {
			session.SetSeaLevel(seaLevelFlag)
		}
		if flags.Changed("min-y") {
			store.SetMinYLimit(minYFlag)
			fmt.Fprintf(cmd.ErrOrStderr(), "min y is locked at %d, ignoring %d\n", store.MinYLimit(), minYFlag)
		}

		if err := session.Apply().WaitContext(cmd.Context()); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		return printStore(cmd.OutOrStdout(), store)
	},
}

func init() {
	SetCmd.Flags().IntVar(&maxHeightFlag, "max-height", 0, "Upper build limit (384-2048)")
	SetCmd.Flags().IntVar(&seaLevelFlag, "sea-level", 0, "Sea level (0-256)")
	SetCmd.Flags().IntVar(&minYFlag, "min-y", 0, "Lower build limit (locked, accepted for compatibility)")
}
