package main

import (
	"fmt"
	"os"

	"github.com/ByteMirror/worldheight/commands"
	"github.com/ByteMirror/worldheight/config"
	"github.com/ByteMirror/worldheight/log"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
	rootCmd = &cobra.Command{
		Use:   "worldheight",
		Short: "worldheight - runtime world height configuration",
		Long: `worldheight manages the build limit and sea level shared by the
world editor and the host process.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.ShowCmd.RunE(cmd, args)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			env, err := config.ParseEnv()
			if err != nil {
				return err
			}
			path, err := config.ResolvePath(commands.ConfigDirFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n", path)
			fmt.Fprintf(out, "Status interval: %s\n", env.StatusInterval)
			fmt.Fprintf(out, "Hook log interval: %s\n", env.HookLogInterval)
			fmt.Fprintf(out, "Debug logging: %t\n", log.IsDebugEnabled())
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of worldheight",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "worldheight version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&commands.ConfigDirFlag, "config-dir", "",
		"Directory holding increased-world-height.json (default ~/.worldheight)")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.ShowCmd)
	rootCmd.AddCommand(commands.SetCmd)
	rootCmd.AddCommand(commands.ResetCmd)
	rootCmd.AddCommand(commands.HostCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
