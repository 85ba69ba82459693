package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("localtime-bot terminated", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "localtime-bot",
		Short: "Telegram bot that shows the local time of every team member",
		Long: `Telegram bot for teams spread across time zones.

Answers /localTime with the current time of each team member, read from
team_members.json (or ROSTER_FILE). BOT_TOKEN must be set to run the bot,
either in the environment or in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newTimesCmd(), newTokenCmd())
	return root
}
