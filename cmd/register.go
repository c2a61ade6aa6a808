package cmd

import (
	"context"

	"github.com/hunterjsb/askbot/internal/discord"
	"github.com/spf13/cobra"
)

var newRegistrarSession = func(config *discord.Config) (discord.Session, error) {
	session, err := discord.NewSession(config)
	if err != nil {
		return nil, err
	}
	return session, nil
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Overwrites the application's slash commands with the bot's command list",
	Long: `Overwrites the application's slash commands with the bot's command list.

Commands registered earlier that are not in the list are removed. Set
DISCORD_GUILD_ID to register for a single guild instead of globally.
Registration errors are logged and do not change the exit status.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := discord.LoadConfig()
		if err != nil {
			return err
		}
		if err := config.ValidateRegistrar(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		logger := newLogger(ctx, config)

		session, err := newRegistrarSession(config)
		if err != nil {
			return err
		}
		discord.RefreshCommands(session, config.ClientID, config.GuildID, logger)
		return nil
	},
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(registerCmd)
}
