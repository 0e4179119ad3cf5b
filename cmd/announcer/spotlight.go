package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
)

var (
	flagSpotlightShiny    string
	flagSpotlightBonus    int
	flagSpotlightStardust int
)

var spotlightCmd = &cobra.Command{
	Use:   "spotlight [pokemon]",
	Short: "Generate the Spotlight Hour announcement",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSpotlight,
}

func init() {
	spotlightCmd.Flags().StringVar(&flagSpotlightShiny, "shiny", "auto", "shiny availability: auto, yes, or no")
	spotlightCmd.Flags().IntVar(&flagSpotlightBonus, "bonus", 0, "bonus number (1-5); prompts when omitted")
	spotlightCmd.Flags().IntVar(&flagSpotlightStardust, "stardust", 0, "base stardust per catch for the stardust bonus")
}

func runSpotlight(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	interactive := len(args) == 0
	name, refresh, err := resolvePokemon(ctx, a, args, "Spotlight Hour")
	if err != nil {
		return err
	}

	bonuses := event.SpotlightBonuses()
	var bonus event.Bonus
	switch {
	case flagSpotlightBonus >= 1 && flagSpotlightBonus <= len(bonuses):
		bonus = bonuses[flagSpotlightBonus-1]
	case flagSpotlightBonus != 0:
		return errors.InvalidArgumentf("--bonus must be between 1 and %d", len(bonuses))
	default:
		bonus, err = promptBonus()
		if err != nil {
			return err
		}
		fmt.Printf("\n✅ Selected bonus: %s\n", bonus.Description)
	}

	baseStardust := flagSpotlightStardust
	if bonus.Kind == event.BonusCatchStardust && baseStardust == 0 && interactive {
		baseStardust, err = promptBaseStardust()
		if err != nil {
			return err
		}
	}

	shiny, err := resolveShiny(ctx, a, name, flagSpotlightShiny, interactive)
	if err != nil {
		return err
	}

	out, err := a.service.GenerateSpotlightHour(ctx, &event.SpotlightHourInput{
		Name:           name,
		Bonus:          bonus,
		BaseStardust:   baseStardust,
		ShinyAvailable: shiny,
		ForceRefresh:   refresh,
	})
	if err != nil {
		return err
	}

	printEventDate(out.EventDate)
	emit("GENERATED SPOTLIGHT HOUR TEXT", out.Text)
	return nil
}
