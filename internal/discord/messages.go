package discord

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
)

const (
	// AskTrigger marks a message as a prompt for the bot. The match is an
	// exact, case-sensitive prefix.
	AskTrigger = "!ask"

	// MaxReplyLength leaves room for the truncation marker under Discord's
	// 2000 character message limit.
	MaxReplyLength = 1900

	TruncationMarker = "... (message truncated)"

	// FallbackReply is sent instead of an answer when the completion fails
	FallbackReply = "Sorry, there was an error getting the response from Gemini AI. Please check the console for details."
)

// ParsePrompt reports whether content starts with AskTrigger, and returns
// the rest of the message with surrounding whitespace removed.
func ParsePrompt(content string) (string, bool) {
	if !strings.HasPrefix(content, AskTrigger) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(content, AskTrigger)), true
}

// TruncateReply cuts reply to MaxReplyLength characters and appends
// TruncationMarker if it was longer.
func TruncateReply(reply string) string {
	if utf8.RuneCountInString(reply) <= MaxReplyLength {
		return reply
	}
	return string([]rune(reply)[:MaxReplyLength]) + TruncationMarker
}

// handleMessage answers "!ask" messages with a completion of the prompt
func (b *DiscordBot) handleMessage(ctx context.Context, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	prompt, ok := ParsePrompt(m.Content)
	if !ok {
		return
	}

	log := b.Logger.With("channel_id", m.ChannelID, "message_id", m.ID)

	if err := b.Session.ChannelTyping(m.ChannelID); err != nil {
		log.Warn("error sending typing indicator", tint.Err(err))
	}

	reply, err := b.ask(ctx, prompt)
	if err != nil {
		log.Error("Gemini API Error", tint.Err(err))
		reply = FallbackReply
	} else {
		reply = TruncateReply(reply)
	}

	if _, err := b.Session.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Error("error sending reply", tint.Err(err))
	}
}

// ask waits for the rate limiter, then requests a completion of prompt
func (b *DiscordBot) ask(ctx context.Context, prompt string) (string, error) {
	if b.Config.CompletionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Config.CompletionTimeout)
		defer cancel()
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	return b.Completer.Complete(ctx, prompt)
}
