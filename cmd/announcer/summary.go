package main

import (
	"github.com/spf13/cobra"

	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [pokemon]",
	Short: "Show the cached stats summary for a Pokémon",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	name, refresh, err := resolvePokemon(ctx, a, args, "summary")
	if err != nil {
		return err
	}

	out, err := a.service.GenerateSummary(ctx, &event.SummaryInput{
		Name:         name,
		ForceRefresh: refresh,
	})
	if err != nil {
		return err
	}

	emit("POKÉMON SUMMARY", out.Text)
	return nil
}
