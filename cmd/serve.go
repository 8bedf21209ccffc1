package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/daybrief-ai/daybrief"
	"github.com/daybrief-ai/daybrief/server"
)

func newServeCmd(cfgPath *string) *cobra.Command {
	var addr string
	var turnTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the assistant over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			oracle, err := daybrief.NewOracleFromConfig(cfg, logger)
			if err != nil {
				return err
			}

			factory := func() (*daybrief.Assistant, error) {
				return daybrief.New(oracle, func(o *daybrief.Options) {
					o.Logger = logger
					o.MaxMemory = cfg.Conversation.MaxMemory
					o.ContextExpiry = cfg.Conversation.ContextExpiry()
				})
			}

			srv := server.New(factory, func(o *server.Options) {
				o.Addr = cfg.Server.Addr
				o.Logger = logger
				o.TurnTimeout = turnTimeout
			})
			return srv.Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().DurationVar(&turnTimeout, "turn-timeout", time.Minute, "deadline for a single conversation turn (0 disables)")
	return cmd
}
