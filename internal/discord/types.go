package discord

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// Session is the subset of *discordgo.Session used by the bot and the
// command registrar.
type Session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

var _ Session = (*discordgo.Session)(nil)

// Completer generates a text completion for a single prompt
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DiscordBot represents a Discord bot
type DiscordBot struct {
	Session         Session
	Config          *Config
	Completer       Completer
	Logger          *slog.Logger
	CommandHandlers map[string]func(i *discordgo.InteractionCreate)

	limiter *rate.Limiter

	mu             sync.Mutex
	ctx            context.Context
	removeHandlers []func()
}

// CompletionClient wraps an OpenAI-compatible chat completion API
type CompletionClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}
