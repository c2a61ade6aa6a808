package cmd

import (
	"context"
	"log/slog"

	"github.com/hunterjsb/askbot/internal/discord"
	"github.com/spf13/cobra"
)

type botRunner interface {
	Run(ctx context.Context) error
}

var newBot = func(config *discord.Config, logger *slog.Logger) (botRunner, error) {
	bot, err := discord.NewDiscordBot(config, logger)
	if err != nil {
		return nil, err
	}
	return bot, nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connects to the Discord gateway and answers !ask messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := discord.LoadConfig()
		if err != nil {
			return err
		}
		if err := config.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		logger := newLogger(ctx, config)

		bot, err := newBot(config, logger)
		if err != nil {
			return err
		}
		return bot.Run(ctx)
	},
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(runCmd)
}
