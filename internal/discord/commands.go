package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
)

const CreateCommandName = "create"

// Command definitions
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        CreateCommandName,
		Description: "Creates a new short URL",
	},
}

// Commands returns a copy of the slash commands the bot answers
func Commands() []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, len(commands))
	for i, cmd := range commands {
		c := *cmd
		out[i] = &c
	}
	return out
}

// RegisterCommands overwrites the application's command set with
// Commands. Commands registered earlier and missing from the list are
// removed. An empty guildID targets the global command set.
func RegisterCommands(session Session, appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
	registered, err := session.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return nil, fmt.Errorf("error overwriting application commands: %w", err)
	}
	return registered, nil
}

// RefreshCommands registers the commands and logs the outcome. Errors are
// logged and not returned.
func RefreshCommands(session Session, appID, guildID string, logger *slog.Logger) {
	logger = logger.With(loggerNameKey, "registrar", "application_id", appID)
	if guildID != "" {
		logger = logger.With("guild_id", guildID)
	}

	logger.Info("Started refreshing application (/) commands.")

	registered, err := RegisterCommands(session, appID, guildID)
	if err != nil {
		logger.Error("error refreshing application (/) commands", tint.Err(err))
		return
	}

	logger.Info(
		"Successfully reloaded application (/) commands.",
		"count", len(registered),
	)
}
