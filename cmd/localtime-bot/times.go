package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aidar/localtime-bot/internal/app"
	"github.com/aidar/localtime-bot/internal/config"
	"github.com/aidar/localtime-bot/internal/repository/jsonfile"
	"github.com/aidar/localtime-bot/internal/service"
)

func newTimesCmd() *cobra.Command {
	var (
		rosterFile string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "times",
		Short: "Print the local time of every team member",
		Long: `Print the same text the bot replies with to /localTime.

Does not contact Telegram and does not need BOT_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rosterFile == "" {
				cfg, err := config.LoadRoster()
				if err != nil {
					return err
				}
				rosterFile = cfg.File
			}

			// Диагностика в stderr, чтобы stdout содержал только результат
			logger := app.NewLogger(cmd.ErrOrStderr(), slog.LevelInfo)
			store := jsonfile.NewRosterStore(rosterFile, logger)
			localTimes := service.NewLocalTimeService(store, service.NewTimeZoneResolver(logger, nil))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(localTimes.MemberTimes())
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), localTimes.LocalTimes())
			return err
		},
	}

	cmd.Flags().StringVarP(&rosterFile, "roster", "r", "", "path to the roster file (default $ROSTER_FILE or team_members.json)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print members with city and timezone as JSON")

	return cmd
}
