package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
)

var (
	flagLegendaryShiny string
	flagLegendaryDay   string
)

var legendaryCmd = &cobra.Command{
	Use:   "legendary [pokemon...]",
	Short: "Generate the Legendary Hour announcement",
	Long: `Generate the Legendary Hour announcement. Passing several Pokémon
produces the multi-Pokémon rendering with per-Pokémon CP and weather
lines.`,
	RunE: runLegendary,
}

func init() {
	legendaryCmd.Flags().StringVar(&flagLegendaryShiny, "shiny", "auto", "shiny availability: auto, yes, or no")
	legendaryCmd.Flags().StringVar(&flagLegendaryDay, "day", "wednesday", "event weekday")
}

func runLegendary(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	day, err := parseWeekdayFlag(flagLegendaryDay)
	if err != nil {
		return err
	}

	names := args
	interactive := len(names) == 0
	var overrides map[string]bool

	if interactive {
		if !cmd.Flags().Changed("day") {
			day, err = promptWeekday(day)
			if err != nil {
				return err
			}
		}

		count, err := promptChoice("\n🔢 How many Pokémon will be featured? (1-4): ", 1, 4)
		if err != nil {
			return err
		}

		overrides = make(map[string]bool, count)
		for i := 1; i <= count; i++ {
			label := "Legendary Hour"
			if count > 1 {
				label = fmt.Sprintf("Legendary Hour (%d of %d)", i, count)
			}
			name, _, err := resolvePokemon(ctx, a, nil, label)
			if err != nil {
				return err
			}

			got, err := a.service.GetPokemon(ctx, &event.GetPokemonInput{Name: name})
			if err != nil {
				return err
			}
			shiny, err := promptShiny(got.Record.IsShinyAvailable)
			if err != nil {
				return err
			}
			overrides[strings.ToLower(name)] = *shiny

			names = append(names, name)
		}
	} else {
		shiny, err := parseShinyFlag(flagLegendaryShiny)
		if err != nil {
			return err
		}
		if shiny != nil {
			overrides = make(map[string]bool, len(names))
			for _, name := range names {
				overrides[strings.ToLower(name)] = *shiny
			}
		}
	}

	out, err := a.service.GenerateLegendaryHour(ctx, &event.LegendaryHourInput{
		Names:          names,
		Weekday:        day,
		ShinyOverrides: overrides,
		ForceRefresh:   flagRefresh,
	})
	if err != nil {
		return err
	}

	printEventDate(out.EventDate)
	emit("GENERATED LEGENDARY HOUR TEXT", out.Text)
	return nil
}
