package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hunterjsb/askbot/internal/discord"
	"github.com/hunterjsb/askbot/internal/dotenv"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "askbot [command]",
	Short:        "Discord bot that answers !ask prompts with Gemini",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnv()
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context. Any error exits with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func loadEnv() {
	if envFile != "" {
		if err := dotenv.Load(envFile); err != nil {
			log.Printf("error loading env file %s: %v", envFile, err)
		}
		return
	}

	found, err := dotenv.LoadDefault()
	switch {
	case err != nil:
		log.Printf("error loading %s: %v", dotenv.DefaultFile, err)
	case !found:
		log.Printf("No %s file found, using environment variables", dotenv.DefaultFile)
	}
}

// newLogger builds the application logger and routes discordgo's logs
// through the same handler type.
func newLogger(ctx context.Context, config *discord.Config) *slog.Logger {
	discord.SetDiscordGoLogger(
		ctx,
		discord.NewLogHandler(os.Stdout, config.DiscordGoLogLevel),
	)
	return slog.New(discord.NewLogHandler(os.Stdout, config.LogLevel))
}

//nolint:gochecknoinits
func init() {
	rootCmd.PersistentFlags().StringVar(
		&envFile,
		"env-file",
		"",
		"Load environment variables from this file instead of .env",
	)
}
