package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/gamemath"
	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
	"github.com/teamvirrey/meetup-announcer/internal/repositories/pokedex"
)

var flagCacheYes bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the Pokémon data cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached Pokémon",
	RunE:  runCacheList,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached record",
	RunE:  runCacheClear,
}

var cacheDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove one cached record by Pokédex number",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheDelete,
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh <pokemon>",
	Short: "Re-fetch a Pokémon from the API and update the cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheRefresh,
}

func init() {
	cacheClearCmd.Flags().BoolVarP(&flagCacheYes, "yes", "y", false, "skip the confirmation prompt")

	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheDeleteCmd)
	cacheCmd.AddCommand(cacheRefreshCmd)
}

func describeRecord(rec *pokemon.Record) string {
	shiny := " "
	if rec.IsShinyAvailable {
		shiny = "✨"
	}
	note := ""
	if !rec.IsReleased {
		note = "  (unreleased)"
	}
	return fmt.Sprintf("%s %-12s %s %s  Max CP: %s  %s  🚶%d km  🍬%d  fetched %s%s",
		rec.DexNumber(), rec.Name, shiny,
		pokemon.FormatTypeInfo(rec.Types),
		gamemath.FormatCP(rec.MaxCP),
		rec.RaritySpanish(),
		rec.BuddyDistance,
		rec.CandyToEvolve,
		rec.FetchedAt.Format("2006-01-02"),
		note)
}

func runCacheList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	out, err := a.repo.List(cmd.Context(), pokedex.ListInput{})
	if err != nil {
		return err
	}

	if len(out.Records) == 0 {
		fmt.Println("📭 Cache is empty.")
		return nil
	}

	fmt.Printf("📊 %d Pokémon in cache:\n\n", len(out.Records))
	for _, rec := range out.Records {
		fmt.Println(describeRecord(rec))
	}
	return nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	out, err := a.repo.Stats(cmd.Context(), pokedex.StatsInput{})
	if err != nil {
		return err
	}

	fmt.Printf("📊 Cache contains %d Pokémon.\n", out.Count)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if !flagCacheYes {
		confirmed, err := promptYesNo("⚠️  Remove every cached record? (y/n): ")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	out, err := a.repo.Clear(cmd.Context(), pokedex.ClearInput{})
	if err != nil {
		return err
	}

	fmt.Printf("🗑️  Removed %d record(s).\n", out.Deleted)
	return nil
}

func runCacheDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return errors.InvalidArgumentf("invalid Pokédex number %q", args[0])
	}

	if _, err := a.repo.Delete(cmd.Context(), pokedex.DeleteInput{ID: id}); err != nil {
		return err
	}

	fmt.Printf("🗑️  Removed #%03d from the cache.\n", id)
	return nil
}

func runCacheRefresh(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	out, err := a.service.GetPokemon(cmd.Context(), &event.GetPokemonInput{
		Name:         args[0],
		ForceRefresh: true,
	})
	if err != nil {
		return err
	}
	if out.Stale {
		fmt.Println("⚠️  API unreachable; the cached record was kept.")
	}

	fmt.Println("🔄 " + describeRecord(out.Record))
	return nil
}
