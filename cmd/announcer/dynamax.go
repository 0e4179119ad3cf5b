package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamvirrey/meetup-announcer/internal/dates"
	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
)

var flagDynamaxShiny string

var dynamaxCmd = &cobra.Command{
	Use:   "dynamax [pokemon]",
	Short: "Generate the Dynamax Monday announcement",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDynamax,
}

func init() {
	dynamaxCmd.Flags().StringVar(&flagDynamaxShiny, "shiny", "auto", "shiny availability: auto, yes, or no")
}

// resolvePokemon takes the Pokémon name from the args or prompts for
// one. With a name argument the --refresh flag decides freshness; in
// interactive mode an already cached Pokémon gets the cached-vs-fresh
// choice, and choosing fresh re-fetches the record on the spot.
func resolvePokemon(ctx context.Context, a *app, args []string, label string) (string, bool, error) {
	if len(args) > 0 {
		return args[0], flagRefresh, nil
	}

	name, fromCache, err := promptPokemonName(ctx, a.service, label)
	if err != nil {
		return "", false, err
	}

	if fromCache && !flagRefresh {
		fresh, err := promptUseFresh(name)
		if err != nil {
			return "", false, err
		}
		if fresh {
			if _, err := a.service.GetPokemon(ctx, &event.GetPokemonInput{Name: name, ForceRefresh: true}); err != nil {
				return "", false, err
			}
		}
	}
	return name, flagRefresh, nil
}

// resolveShiny parses the --shiny flag, prompting in interactive mode
// when the flag was left on auto
func resolveShiny(ctx context.Context, a *app, name, flagValue string, interactive bool) (*bool, error) {
	shiny, err := parseShinyFlag(flagValue)
	if err != nil {
		return nil, err
	}
	if shiny != nil || !interactive {
		return shiny, nil
	}

	got, err := a.service.GetPokemon(ctx, &event.GetPokemonInput{Name: name})
	if err != nil {
		return nil, err
	}
	return promptShiny(got.Record.IsShinyAvailable)
}

func printEventDate(occ dates.Occurrence) {
	fmt.Printf("\n📅 Event date: %s\n", occ.Display)
	if occ.IsToday {
		fmt.Println("🎯 Today is the event day!")
	} else {
		fmt.Printf("⏰ %d day(s) until the event\n", occ.DaysUntil)
	}
}

func runDynamax(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	interactive := len(args) == 0
	name, refresh, err := resolvePokemon(ctx, a, args, "Dynamax Monday")
	if err != nil {
		return err
	}

	shiny, err := resolveShiny(ctx, a, name, flagDynamaxShiny, interactive)
	if err != nil {
		return err
	}

	out, err := a.service.GenerateDynamaxMonday(ctx, &event.DynamaxMondayInput{
		Name:           name,
		ShinyAvailable: shiny,
		ForceRefresh:   refresh,
	})
	if err != nil {
		return err
	}

	printEventDate(out.EventDate)
	emit("GENERATED DYNAMAX MONDAY TEXT", out.Text)
	return nil
}
