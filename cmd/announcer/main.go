// Package main is the entry point for the announcer CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagNoCopy  bool
	flagRefresh bool
)

var rootCmd = &cobra.Command{
	Use:   "announcer",
	Short: "Pokémon Go event announcement generator",
	Long: `Announcer generates Spanish announcement text for recurring Pokémon Go
community events: Dynamax Monday, Spotlight Hour, Legendary Hour, Max
Battle Day, and Raid Day. Pokémon data comes from PoGoAPI.net and is
cached in Redis.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoCopy, "no-copy", false, "do not copy generated text to the clipboard")
	rootCmd.PersistentFlags().BoolVar(&flagRefresh, "refresh", false, "bypass the cache and fetch fresh data")

	rootCmd.AddCommand(dynamaxCmd)
	rootCmd.AddCommand(spotlightCmd)
	rootCmd.AddCommand(legendaryCmd)
	rootCmd.AddCommand(maxBattleCmd)
	rootCmd.AddCommand(raidDayCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(cacheCmd)
}
