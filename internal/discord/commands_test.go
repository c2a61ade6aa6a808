package discord

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	cmds := Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "create", cmds[0].Name)
	assert.Equal(t, "Creates a new short URL", cmds[0].Description)
	assert.Empty(t, cmds[0].Options)

	cmds[0].Name = "changed"
	assert.Equal(t, CreateCommandName, Commands()[0].Name)
}

func TestRegisterCommands(t *testing.T) {
	session := &mockSession{}

	registered, err := RegisterCommands(session, "app-id", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"ApplicationCommandBulkOverwrite"}, session.Calls)
	assert.Equal(t, "app-id", session.AppID)
	assert.Empty(t, session.GuildID)
	require.Len(t, session.Overwritten, 1)
	assert.Equal(t, Commands(), session.Overwritten[0])
	assert.Len(t, registered, 1)
}

func TestRegisterCommands_Error(t *testing.T) {
	session := &mockSession{OverwriteErr: errors.New("401: Unauthorized")}

	registered, err := RegisterCommands(session, "app-id", "guild-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, session.OverwriteErr)
	assert.Nil(t, registered)
	assert.Equal(t, "guild-id", session.GuildID)
}

func TestRefreshCommands(t *testing.T) {
	session := &mockSession{}
	buf := &bytes.Buffer{}

	RefreshCommands(session, "app-id", "guild-id", slog.New(slog.NewTextHandler(buf, nil)))

	assert.Equal(t, "guild-id", session.GuildID)
	assert.Contains(t, buf.String(), "Started refreshing application (/) commands.")
	assert.Contains(t, buf.String(), "Successfully reloaded application (/) commands.")
}

func TestRefreshCommands_SwallowsError(t *testing.T) {
	session := &mockSession{OverwriteErr: errors.New("401: Unauthorized")}
	buf := &bytes.Buffer{}

	assert.NotPanics(t, func() {
		RefreshCommands(session, "app-id", "", slog.New(slog.NewTextHandler(buf, nil)))
	})

	assert.Len(t, session.Overwritten, 1)
	assert.Contains(t, buf.String(), "401: Unauthorized")
	assert.NotContains(t, buf.String(), "Successfully reloaded")
}
