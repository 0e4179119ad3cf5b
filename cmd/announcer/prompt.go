package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/orchestrators/event"
)

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPokemonName asks for a name until one resolves, offering
// suggestions from a partial-name search on misses and a retry when the
// API is unreachable. The second return reports whether the record was
// already cached before the prompt.
func promptPokemonName(ctx context.Context, svc event.Service, label string) (string, bool, error) {
	for {
		name, err := readLine(fmt.Sprintf("\n🔍 Enter Pokémon name for %s: ", label))
		if err != nil {
			return "", false, err
		}
		if name == "" {
			fmt.Println("❌ Please enter a valid name.")
			continue
		}

		got, err := svc.GetPokemon(ctx, &event.GetPokemonInput{Name: name})
		if err == nil {
			return got.Record.Name, got.FromCache, nil
		}
		if errors.IsUnavailable(err) {
			fmt.Printf("❌ Could not reach the API: %v\n", err)
			retry, rerr := promptYesNo("Try again? (y/n): ")
			if rerr != nil {
				return "", false, rerr
			}
			if !retry {
				return "", false, err
			}
			continue
		}
		if !errors.IsNotFound(err) {
			return "", false, err
		}

		fmt.Printf("❌ '%s' not found. Searching for similar names...\n", name)
		out, err := svc.SearchPokemon(ctx, &event.SearchPokemonInput{PartialName: name, Limit: 5})
		if err != nil && !errors.IsNotFound(err) {
			if errors.IsUnavailable(err) {
				fmt.Printf("❌ Could not reach the API: %v\n", err)
				continue
			}
			return "", false, err
		}
		if out == nil || len(out.Names) == 0 {
			fmt.Println("❌ No similar Pokémon found. Try another name.")
			continue
		}

		fmt.Println("\n📋 Pokémon found:")
		for i, suggestion := range out.Names {
			fmt.Printf("  %d. %s\n", i+1, suggestion)
		}
		fmt.Printf("  %d. Search for another name\n", len(out.Names)+1)

		choice, err := promptChoice(fmt.Sprintf("\n🎯 Select an option (1-%d): ", len(out.Names)+1), 1, len(out.Names)+1)
		if err != nil {
			return "", false, err
		}
		if choice <= len(out.Names) {
			selected, err := svc.GetPokemon(ctx, &event.GetPokemonInput{Name: out.Names[choice-1]})
			if err != nil {
				return "", false, err
			}
			return selected.Record.Name, selected.FromCache, nil
		}
	}
}

// promptUseFresh offers the cached-vs-fresh choice for an already
// cached Pokémon; true means re-fetch from the API
func promptUseFresh(name string) (bool, error) {
	fmt.Printf("\n💾 %s is already in the cache.\n", name)
	fmt.Println("  1. Use existing data")
	fmt.Println("  2. Fetch fresh data from the API")

	choice, err := promptChoice("\n🎯 Select an option (1-2): ", 1, 2)
	if err != nil {
		return false, err
	}
	return choice == 2, nil
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// promptWeekday picks the event weekday; empty input keeps def
func promptWeekday(def time.Weekday) (time.Weekday, error) {
	fmt.Println("\n📅 Select the event day:")
	for i, day := range weekdayOrder {
		fmt.Printf("  %d. %s\n", i+1, day)
	}

	for {
		raw, err := readLine(fmt.Sprintf("\n🎯 Select a day (1-7, enter for %s): ", def))
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return def, nil
		}
		choice, err := strconv.Atoi(raw)
		if err != nil || choice < 1 || choice > len(weekdayOrder) {
			fmt.Printf("❌ Please enter a number between 1 and %d.\n", len(weekdayOrder))
			continue
		}
		return weekdayOrder[choice-1], nil
	}
}

// promptWeekendDay picks Saturday or Sunday
func promptWeekendDay() (time.Weekday, error) {
	fmt.Println("\n📅 Select the event day:")
	fmt.Println("  1. Saturday")
	fmt.Println("  2. Sunday")

	choice, err := promptChoice("\n🎯 Select a day (1-2): ", 1, 2)
	if err != nil {
		return 0, err
	}
	if choice == 1 {
		return time.Saturday, nil
	}
	return time.Sunday, nil
}

// promptChoice reads a number between min and max inclusive
func promptChoice(prompt string, min, max int) (int, error) {
	for {
		raw, err := readLine(prompt)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(raw)
		if err != nil || choice < min || choice > max {
			fmt.Printf("❌ Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return choice, nil
	}
}

func promptYesNo(prompt string) (bool, error) {
	for {
		raw, err := readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "y", "yes", "1":
			return true, nil
		case "n", "no", "0":
			return false, nil
		}
		fmt.Println("❌ Please enter 'y' for yes or 'n' for no.")
	}
}

// promptShiny confirms shiny availability against the API flag
func promptShiny(apiAvailable bool) (*bool, error) {
	status := "No"
	if apiAvailable {
		status = "Yes"
	}
	fmt.Println("\n✨ Shiny availability check:")
	fmt.Printf("   API data shows: %s\n", status)

	available, err := promptYesNo("Is shiny available for this event? (y/n): ")
	if err != nil {
		return nil, err
	}
	return &available, nil
}

func promptBonus() (event.Bonus, error) {
	bonuses := event.SpotlightBonuses()

	fmt.Println("\n🎁 Select Spotlight Hour bonus:")
	fmt.Println(strings.Repeat("=", 40))
	for i, bonus := range bonuses {
		fmt.Printf("  %d. %s\n", i+1, bonus.Description)
	}

	choice, err := promptChoice(fmt.Sprintf("\n🎯 Select bonus type (1-%d): ", len(bonuses)), 1, len(bonuses))
	if err != nil {
		return event.Bonus{}, err
	}
	return bonuses[choice-1], nil
}

func promptBaseStardust() (int, error) {
	fmt.Println("\n✨ Stardust calculation:")
	fmt.Println("   Enter the base stardust amount per catch for this Pokémon")
	fmt.Println("   (Common values: 100, 500, 750, 1000, 1250)")

	for {
		raw, err := readLine("💫 Base stardust per catch: ")
		if err != nil {
			return 0, err
		}
		base, err := strconv.Atoi(raw)
		if err != nil || base <= 0 {
			fmt.Println("❌ Please enter a positive number.")
			continue
		}
		return base, nil
	}
}

// parseShinyFlag turns the --shiny value into an override: auto defers
// to the API flag
func parseShinyFlag(value string) (*bool, error) {
	switch strings.ToLower(value) {
	case "", "auto":
		return nil, nil
	case "yes", "y", "true":
		v := true
		return &v, nil
	case "no", "n", "false":
		v := false
		return &v, nil
	}
	return nil, errors.InvalidArgumentf("invalid --shiny value %q (auto, yes, no)", value)
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func parseWeekdayFlag(value string) (time.Weekday, error) {
	if day, ok := weekdayNames[strings.ToLower(value)]; ok {
		return day, nil
	}
	return 0, errors.InvalidArgumentf("invalid --day value %q", value)
}
