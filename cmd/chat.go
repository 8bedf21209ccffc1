package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybrief-ai/daybrief"
	"github.com/daybrief-ai/daybrief/orchestrator"
)

func newChatCmd(cfgPath *string) *cobra.Command {
	var turnTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			oracle, err := daybrief.NewOracleFromConfig(cfg, logger)
			if err != nil {
				return err
			}

			assistant, err := daybrief.New(oracle, func(o *daybrief.Options) {
				o.Logger = logger
				o.MaxMemory = cfg.Conversation.MaxMemory
				o.ContextExpiry = cfg.Conversation.ContextExpiry()
			})
			if err != nil {
				return err
			}

			return runChatLoop(cmd, assistant, turnTimeout)
		},
	}

	cmd.Flags().DurationVar(&turnTimeout, "turn-timeout", time.Minute, "deadline for a single conversation turn (0 disables)")
	return cmd
}

func runChatLoop(cmd *cobra.Command, assistant *daybrief.Assistant, turnTimeout time.Duration) error {
	out := cmd.OutOrStdout()
	orch := assistant.Orchestrator()

	fmt.Fprintln(out, "Hi there! I'm your personal assistant for weather updates, time information, and clothing recommendations.")
	fmt.Fprintln(out, "I can help you plan your day and choose the perfect outfit based on the weather!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Here are some things you can ask me:")
	fmt.Fprintln(out, "  What's the weather like in New York?")
	fmt.Fprintln(out, "  What should I wear today?")
	fmt.Fprintln(out, "  Give me a summary of my day")
	fmt.Fprintln(out, "  What time is it in London?")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type 'exit' when you're done!")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprintf(out, "\n%s ", orch.NextFollowUp())
		if !scanner.Scan() {
			fmt.Fprintf(out, "\n%s\n", orch.NextGoodbye())
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if orchestrator.IsExitPhrase(input) {
			fmt.Fprintf(out, "\n%s\n", orch.NextGoodbye())
			return nil
		}

		ctx := cmd.Context()
		cancel := context.CancelFunc(func() {})
		if turnTimeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, turnTimeout)
		}
		reply := assistant.Process(ctx, input)
		cancel()

		fmt.Fprintf(out, "\n%s\n", reply)
	}
}
