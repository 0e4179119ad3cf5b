package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
)

var (
	flagMaxBattleShiny string
	flagMaxBattleDay   string
	flagMaxBattleKind  string
)

var maxBattleCmd = &cobra.Command{
	Use:   "maxbattle [pokemon]",
	Short: "Generate the Max Battle Day announcement",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMaxBattle,
}

func init() {
	maxBattleCmd.Flags().StringVar(&flagMaxBattleShiny, "shiny", "auto", "shiny availability: auto, yes, or no")
	maxBattleCmd.Flags().StringVar(&flagMaxBattleDay, "day", "saturday", "event day: saturday or sunday")
	maxBattleCmd.Flags().StringVar(&flagMaxBattleKind, "kind", "dynamax", "max form: dynamax or gigantamax")
}

func parseMaxKind(value string) (event.MaxKind, error) {
	switch strings.ToLower(value) {
	case "dynamax":
		return event.MaxKindDynamax, nil
	case "gigantamax":
		return event.MaxKindGigantamax, nil
	}
	return "", errors.InvalidArgumentf("invalid --kind value %q (dynamax, gigantamax)", value)
}

func runMaxBattle(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	day, err := parseWeekdayFlag(flagMaxBattleDay)
	if err != nil {
		return err
	}
	kind, err := parseMaxKind(flagMaxBattleKind)
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

	name, refresh, err := resolvePokemon(ctx, a, args, "Max Battle Day")
	if err != nil {
		return err
	}

	shiny, err := resolveShiny(ctx, a, name, flagMaxBattleShiny, interactive)
	if err != nil {
		return err
	}

	out, err := a.service.GenerateMaxBattleDay(ctx, &event.MaxBattleDayInput{
		Name:           name,
		Day:            day,
		Kind:           kind,
		ShinyAvailable: shiny,
		ForceRefresh:   refresh,
	})
	if err != nil {
		return err
	}

	printEventDate(out.EventDate)
	emit("GENERATED MAX BATTLE DAY TEXT", out.Text)
	return nil
}
