package cmd

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/hunterjsb/askbot/internal/discord"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"DISCORD_TOKEN",
	"GEMINI_API_KEY",
	"DISCORD_CLIENT_ID",
	"DISCORD_GUILD_ID",
	"GEMINI_MODEL",
	"GEMINI_BASE_URL",
	"LOG_LEVEL",
	"DISCORDGO_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

type stubRunner struct {
	ran bool
	err error
}

func (r *stubRunner) Run(context.Context) error {
	r.ran = true
	return r.err
}

// stubNewBot replaces newBot for the duration of the test and returns the
// runner it hands out along with a pointer to the config it received.
func stubNewBot(t *testing.T) (*stubRunner, **discord.Config) {
	t.Helper()
	orig := newBot
	t.Cleanup(func() { newBot = orig })

	runner := &stubRunner{}
	var got *discord.Config
	newBot = func(config *discord.Config, _ *slog.Logger) (botRunner, error) {
		got = config
		return runner, nil
	}
	return runner, &got
}

type stubSession struct {
	discord.Session
	appID        string
	guildID      string
	commands     []*discordgo.ApplicationCommand
	overwriteErr error
}

func (s *stubSession) ApplicationCommandBulkOverwrite(
	appID string,
	guildID string,
	commands []*discordgo.ApplicationCommand,
	_ ...discordgo.RequestOption,
) ([]*discordgo.ApplicationCommand, error) {
	s.appID = appID
	s.guildID = guildID
	s.commands = commands
	return commands, s.overwriteErr
}

func stubRegistrarSession(t *testing.T, session *stubSession) {
	t.Helper()
	orig := newRegistrarSession
	t.Cleanup(func() { newRegistrarSession = orig })
	newRegistrarSession = func(*discord.Config) (discord.Session, error) {
		return session, nil
	}
}

func discardStdout(t *testing.T) {
	t.Helper()
	orig := os.Stdout
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	os.Stdout = devNull
	t.Cleanup(func() {
		os.Stdout = orig
		_ = devNull.Close()
	})
}
