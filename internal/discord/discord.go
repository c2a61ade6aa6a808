package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Intents are the gateway intents the bot subscribes to. MessageContent is
// privileged and has to be enabled for the application in the developer
// portal.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

// NewSession creates a Discord session authenticated with the configured
// bot token. It does not connect.
func NewSession(config *Config) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	session.Identify.Intents = Intents
	session.LogLevel = discordGoLogLevel(config.DiscordGoLogLevel)
	return session, nil
}

// NewDiscordBot creates a new Discord bot with a live session and
// completion client built from config
func NewDiscordBot(config *Config, logger *slog.Logger) (*DiscordBot, error) {
	session, err := NewSession(config)
	if err != nil {
		return nil, err
	}
	return NewBot(config, session, NewCompletionClient(config), logger), nil
}

// NewBot creates a bot around the given collaborators
func NewBot(config *Config, session Session, completer Completer, logger *slog.Logger) *DiscordBot {
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if config.RateLimit > 0 {
		limit = rate.Limit(config.RateLimit)
	}
	burst := config.RateBurst
	if burst < 1 {
		burst = 1
	}

	bot := &DiscordBot{
		Session:         session,
		Config:          config,
		Completer:       completer,
		Logger:          logger.With(loggerNameKey, "discord"),
		CommandHandlers: make(map[string]func(i *discordgo.InteractionCreate)),
		limiter:         rate.NewLimiter(limit, burst),
		ctx:             context.Background(),
	}

	// Set up command handlers
	bot.CommandHandlers[CreateCommandName] = bot.handleCreateCommand

	return bot
}

// Start registers the event handlers and opens the gateway connection.
// Handlers derive their contexts from ctx.
func (b *DiscordBot) Start(ctx context.Context) error {
	b.mu.Lock()
	b.ctx = ctx
	b.removeHandlers = append(
		b.removeHandlers,
		b.Session.AddHandler(b.readyHandler),
		b.Session.AddHandler(b.messageHandler),
		b.Session.AddHandler(b.interactionHandler),
	)
	b.mu.Unlock()

	// Open a websocket connection to Discord
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}
	return nil
}

// Stop removes the event handlers and closes the gateway connection
func (b *DiscordBot) Stop() error {
	b.mu.Lock()
	for _, remove := range b.removeHandlers {
		remove()
	}
	b.removeHandlers = nil
	b.mu.Unlock()

	return b.Session.Close()
}

// Run starts the bot and blocks until ctx is done
func (b *DiscordBot) Run(ctx context.Context) error {
	if err := b.Start(ctx); err != nil {
		return err
	}
	b.Logger.Info("Bot is now running. Press CTRL-C to exit.")

	<-ctx.Done()
	b.Logger.Info("Shutting down bot...")
	return b.Stop()
}

func (b *DiscordBot) context() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx
}

func (b *DiscordBot) readyHandler(_ *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		return
	}
	b.Logger.Info(fmt.Sprintf("Bot is logged in as %s!", r.User.String()))
}

func (b *DiscordBot) messageHandler(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.handleMessage(b.context(), m)
}

func (b *DiscordBot) interactionHandler(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handleInteraction(i)
}
