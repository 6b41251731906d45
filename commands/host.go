package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ByteMirror/worldheight/config"
	"github.com/ByteMirror/worldheight/host"
	"github.com/ByteMirror/worldheight/log"
	"github.com/spf13/cobra"
)

// HostCmd runs the background host until it is interrupted. The
// configuration is loaded on start and saved on stop.
var HostCmd = &cobra.Command{
	Use:   "host",
	Short: "Run the world height host process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Initialize(true)
		defer log.Close()

		env, err := config.ParseEnv()
		if err != nil {
			return err
		}
		path, err := config.ResolvePath(ConfigDirFlag)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		h := host.New(config.NewStore(path), env.StatusInterval, env.HookLogInterval)
		if err := h.Run(ctx); err != nil {
			log.ErrorLog.Printf("host stopped with error: %v", err)
			return err
		}
		return nil
	},
}
