package main

import (
	"github.com/spf13/cobra"

	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
)

var (
	flagRaidDayShiny string
	flagRaidDayDay   string
)

var raidDayCmd = &cobra.Command{
	Use:   "raidday [pokemon]",
	Short: "Generate the Raid Day announcement",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRaidDay,
}

func init() {
	raidDayCmd.Flags().StringVar(&flagRaidDayShiny, "shiny", "auto", "shiny availability: auto, yes, or no")
	raidDayCmd.Flags().StringVar(&flagRaidDayDay, "day", "saturday", "event day: saturday or sunday")
}

func runRaidDay(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	day, err := parseWeekdayFlag(flagRaidDayDay)
	if err != nil {
		return err
	}

	interactive := len(args) == 0
	if interactive && !cmd.Flags().Changed("day") {
		day, err = promptWeekendDay()
		if err != nil {
			return err
		}
	}

	name, refresh, err := resolvePokemon(ctx, a, args, "Raid Day")
	if err != nil {
		return err
	}

	shiny, err := resolveShiny(ctx, a, name, flagRaidDayShiny, interactive)
	if err != nil {
		return err
	}

	out, err := a.service.GenerateRaidDay(ctx, &event.RaidDayInput{
		Name:           name,
		Day:            day,
		ShinyAvailable: shiny,
		ForceRefresh:   refresh,
	})
	if err != nil {
		return err
	}

	printEventDate(out.EventDate)
	emit("GENERATED RAID DAY TEXT", out.Text)
	return nil
}
