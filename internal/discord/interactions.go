package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
)

const (
	// CreatePlaceholderReply acknowledges /create. Shortening is not
	// implemented.
	CreatePlaceholderReply = "Handling the /create command..."

	PongReply = "Pong!!"
)

// handleInteraction dispatches application commands to CommandHandlers.
// Commands without a handler get PongReply.
func (b *DiscordBot) handleInteraction(i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	commandName := i.ApplicationCommandData().Name
	if handler, ok := b.CommandHandlers[commandName]; ok {
		handler(i)
		return
	}

	b.Logger.Info(
		"unhandled command",
		"command", commandName,
		"interaction", i.Interaction,
	)
	b.respond(i, PongReply)
}

func (b *DiscordBot) handleCreateCommand(i *discordgo.InteractionCreate) {
	b.respond(i, CreatePlaceholderReply)
}

// respond replies to the interaction with a plain channel message
func (b *DiscordBot) respond(i *discordgo.InteractionCreate, content string) {
	err := b.Session.InteractionRespond(
		i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
			},
		},
	)
	if err != nil {
		b.Logger.Error(
			"error responding to interaction",
			"interaction_id", i.ID,
			tint.Err(err),
		)
	}
}
