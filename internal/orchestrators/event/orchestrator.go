// Package event implements the announcement orchestrator. It resolves a
// Pokémon through the cache and the PoGo API, computes event dates and CP
// figures, and renders the Spanish announcement templates.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/teamvirrey/meetup-announcer/internal/clients/pogoapi"
	"github.com/teamvirrey/meetup-announcer/internal/dates"
	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/gamemath"
	"github.com/teamvirrey/meetup-announcer/internal/pkg/clock"
	"github.com/teamvirrey/meetup-announcer/internal/repositories/pokedex"
	"github.com/teamvirrey/meetup-announcer/internal/templates"
)

// Service defines the interface for announcement operations
type Service interface {
	// GetPokemon resolves a Pokémon, cache first, fetching and caching
	// on a miss. When the API is unreachable a cached record is served
	// even if a refresh was requested.
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)

	// SearchPokemon suggests names matching a partial name, combining
	// cached and API results
	SearchPokemon(ctx context.Context, input *SearchPokemonInput) (*SearchPokemonOutput, error)

	// Announcement generation, one operation per recurring event
	GenerateDynamaxMonday(ctx context.Context, input *DynamaxMondayInput) (*DynamaxMondayOutput, error)
	GenerateSpotlightHour(ctx context.Context, input *SpotlightHourInput) (*SpotlightHourOutput, error)
	GenerateLegendaryHour(ctx context.Context, input *LegendaryHourInput) (*LegendaryHourOutput, error)
	GenerateMaxBattleDay(ctx context.Context, input *MaxBattleDayInput) (*MaxBattleDayOutput, error)
	GenerateRaidDay(ctx context.Context, input *RaidDayInput) (*RaidDayOutput, error)

	// GenerateSummary renders the generic stats summary
	GenerateSummary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)
}

// Config holds the dependencies for the event orchestrator
type Config struct {
	Repo      pokedex.Repository
	Client    pogoapi.Client
	Templates *templates.Manager
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Templates == nil {
		vb.RequiredField("Templates")
	}

	return vb.Build()
}

type orchestrator struct {
	repo      pokedex.Repository
	client    pogoapi.Client
	templates *templates.Manager
	clock     clock.Clock
}

// NewOrchestrator creates a new event orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		repo:      cfg.Repo,
		client:    cfg.Client,
		templates: cfg.Templates,
		clock:     c,
	}, nil
}

func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	var cached *pokemon.Record
	cacheOut, err := o.repo.Get(ctx, pokedex.GetInput{IDOrName: name})
	switch {
	case err == nil:
		cached = cacheOut.Record
	case errors.IsNotFound(err):
		// cache miss, fetch below
	default:
		// A broken cache should not block generation
		slog.Warn("cache lookup failed", "name", name, "error", err)
	}

	if cached != nil && !input.ForceRefresh {
		return &GetPokemonOutput{Record: cached, FromCache: true}, nil
	}

	fetched, err := o.client.GetPokemon(ctx, name)
	if err != nil {
		if cached != nil && errors.IsUnavailable(err) {
			slog.Warn("pogoapi unreachable, serving cached record", "name", name, "error", err)
			return &GetPokemonOutput{Record: cached, FromCache: true, Stale: true}, nil
		}
		return nil, err
	}

	if _, err := o.repo.Put(ctx, pokedex.PutInput{Record: fetched}); err != nil {
		slog.Warn("failed to cache record", "name", fetched.Name, "error", err)
	}

	return &GetPokemonOutput{Record: fetched}, nil
}

func (o *orchestrator) SearchPokemon(ctx context.Context, input *SearchPokemonInput) (*SearchPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	partial := strings.TrimSpace(input.PartialName)
	if partial == "" {
		return nil, errors.InvalidArgument("partial name cannot be empty")
	}

	seen := make(map[string]string)

	cacheOut, err := o.repo.Search(ctx, pokedex.SearchInput{PartialName: partial})
	if err != nil {
		slog.Warn("cache search failed", "partial", partial, "error", err)
	} else {
		for _, rec := range cacheOut.Records {
			seen[strings.ToLower(rec.Name)] = rec.Name
		}
	}

	apiNames, err := o.client.SearchPokemon(ctx, partial, 0)
	if err != nil {
		if len(seen) == 0 {
			return nil, err
		}
		slog.Warn("pogoapi search unavailable, using cached names only", "partial", partial, "error", err)
	}
	for _, name := range apiNames {
		seen[strings.ToLower(name)] = name
	}

	names := make([]string, 0, len(seen))
	for _, name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	if input.Limit > 0 && len(names) > input.Limit {
		names = names[:input.Limit]
	}

	return &SearchPokemonOutput{Names: names}, nil
}

func shinyFor(rec *pokemon.Record, override *bool) bool {
	if override != nil {
		return *override
	}
	return rec.IsShinyAvailable
}

func (o *orchestrator) GenerateDynamaxMonday(ctx context.Context, input *DynamaxMondayInput) (*DynamaxMondayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	got, err := o.GetPokemon(ctx, &GetPokemonInput{Name: input.Name, ForceRefresh: input.ForceRefresh})
	if err != nil {
		return nil, err
	}
	rec := got.Record

	occ := dates.NextOccurrence(time.Monday, o.clock.Now())

	text, err := o.templates.RenderDynamaxMonday(rec, occ.Display, shinyFor(rec, input.ShinyAvailable))
	if err != nil {
		return nil, err
	}

	return &DynamaxMondayOutput{Text: text, Record: rec, EventDate: occ}, nil
}

func (o *orchestrator) GenerateSpotlightHour(ctx context.Context, input *SpotlightHourInput) (*SpotlightHourOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Bonus.Description == "" {
		return nil, errors.InvalidArgument("bonus is required")
	}

	got, err := o.GetPokemon(ctx, &GetPokemonInput{Name: input.Name, ForceRefresh: input.ForceRefresh})
	if err != nil {
		return nil, err
	}
	rec := got.Record

	details := input.Bonus.Details
	if input.Bonus.Kind == BonusCatchStardust && input.BaseStardust > 0 {
		details = templates.StardustDetails(input.BaseStardust)
	}

	occ := dates.NextOccurrence(time.Tuesday, o.clock.Now())

	text, err := o.templates.RenderSpotlightHour(
		rec, occ.Display, input.Bonus.Description, details, shinyFor(rec, input.ShinyAvailable))
	if err != nil {
		return nil, err
	}

	return &SpotlightHourOutput{Text: text, Record: rec, EventDate: occ}, nil
}

func (o *orchestrator) GenerateLegendaryHour(ctx context.Context, input *LegendaryHourInput) (*LegendaryHourOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if len(input.Names) == 0 {
		return nil, errors.InvalidArgument("at least one name is required")
	}

	records := make([]*pokemon.Record, 0, len(input.Names))
	for _, name := range input.Names {
		got, err := o.GetPokemon(ctx, &GetPokemonInput{Name: name, ForceRefresh: input.ForceRefresh})
		if err != nil {
			return nil, err
		}
		records = append(records, got.Record)
	}

	occ := dates.NextOccurrence(input.Weekday, o.clock.Now())

	shiny := func(rec *pokemon.Record) bool {
		if input.ShinyOverrides != nil {
			if v, ok := input.ShinyOverrides[strings.ToLower(rec.Name)]; ok {
				return v
			}
		}
		return rec.IsShinyAvailable
	}

	var vars map[string]string
	if len(records) == 1 {
		rec := records[0]
		vars = templates.RecordVars(rec)
		vars["type_verb"] = "es"
		vars["weather_emojis"] = pokemon.WeatherEmojisForTypes(rec.Types)
		vars["shiny_text"] = templates.ShinyText(shiny(rec), templates.EventLegendary)
		vars["pokemon_details"] = ""
		vars["shiny_newline"] = ""
	} else {
		var names, available, unavailable, details []string
		for _, rec := range records {
			names = append(names, rec.Name)
			if shiny(rec) {
				available = append(available, rec.Name)
			} else {
				unavailable = append(unavailable, rec.Name)
			}
			details = append(details, fmt.Sprintf(
				"❖ %s (%s) - CP: %s, %s con clima %s.",
				rec.Name,
				pokemon.FormatTypeInfo(rec.Types),
				gamemath.FormatCP(rec.CPLevel20),
				gamemath.FormatCP(rec.CPLevel25),
				pokemon.WeatherEmojisForTypes(rec.Types),
			))
		}
		vars = map[string]string{
			"pokemon_name":    templates.FormatNameList(names),
			"type_info":       "múltiples tipos",
			"type_verb":       "son",
			"cp_level_20":     "variado",
			"cp_level_25":     "variado",
			"weather_emojis":  "🌤️",
			"shiny_text":      templates.MultiShinyText(available, unavailable),
			"pokemon_details": strings.Join(details, "\n"),
			"shiny_newline":   "\n",
		}
	}
	vars["event_date"] = occ.Display

	text, err := o.templates.Render("legendary_hour", vars)
	if err != nil {
		return nil, err
	}

	return &LegendaryHourOutput{Text: text, Records: records, EventDate: occ}, nil
}

func weekendDay(day time.Weekday) error {
	if day != time.Saturday && day != time.Sunday {
		return errors.InvalidArgumentf("day must be Saturday or Sunday, got %s", day)
	}
	return nil
}

func (o *orchestrator) GenerateMaxBattleDay(ctx context.Context, input *MaxBattleDayInput) (*MaxBattleDayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := weekendDay(input.Day); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = MaxKindDynamax
	}
	if kind != MaxKindDynamax && kind != MaxKindGigantamax {
		return nil, errors.InvalidArgumentf("unknown max kind %q", kind)
	}

	got, err := o.GetPokemon(ctx, &GetPokemonInput{Name: input.Name, ForceRefresh: input.ForceRefresh})
	if err != nil {
		return nil, err
	}
	rec := got.Record

	occ := dates.NextOccurrence(input.Day, o.clock.Now())

	vars := templates.RecordVars(rec)
	vars["event_date"] = occ.Display
	vars["max_type"] = string(kind)
	vars["shiny_text"] = templates.ShinyText(shinyFor(rec, input.ShinyAvailable), templates.EventMaxBattle)

	text, err := o.templates.Render("max_battle_day", vars)
	if err != nil {
		return nil, err
	}

	return &MaxBattleDayOutput{Text: text, Record: rec, EventDate: occ}, nil
}

func (o *orchestrator) GenerateRaidDay(ctx context.Context, input *RaidDayInput) (*RaidDayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := weekendDay(input.Day); err != nil {
		return nil, err
	}

	got, err := o.GetPokemon(ctx, &GetPokemonInput{Name: input.Name, ForceRefresh: input.ForceRefresh})
	if err != nil {
		return nil, err
	}
	rec := got.Record

	occ := dates.NextOccurrence(input.Day, o.clock.Now())

	vars := templates.RecordVars(rec)
	vars["event_date"] = occ.Display
	vars["weather_emojis"] = pokemon.WeatherEmojisForTypes(rec.Types)
	vars["shiny_text"] = templates.ShinyText(shinyFor(rec, input.ShinyAvailable), templates.EventLegendary)

	text, err := o.templates.Render("raid_day", vars)
	if err != nil {
		return nil, err
	}

	return &RaidDayOutput{Text: text, Record: rec, EventDate: occ}, nil
}

func (o *orchestrator) GenerateSummary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	got, err := o.GetPokemon(ctx, &GetPokemonInput{Name: input.Name, ForceRefresh: input.ForceRefresh})
	if err != nil {
		return nil, err
	}
	rec := got.Record

	vars := templates.RecordVars(rec)
	vars["max_cp"] = gamemath.FormatCP(rec.MaxCP)
	vars["rarity"] = rec.RaritySpanish()
	vars["buddy_distance"] = strconv.Itoa(rec.BuddyDistance)
	if rec.CandyToEvolve > 0 {
		vars["evolution_info"] = fmt.Sprintf("🍬 Evolución: %d caramelos", rec.CandyToEvolve)
	} else {
		vars["evolution_info"] = "No evoluciona"
	}
	vars["shiny_status"] = spanishYesNo(rec.IsShinyAvailable)
	vars["released_status"] = spanishYesNo(rec.IsReleased)

	text, err := o.templates.Render("pokemon_summary", vars)
	if err != nil {
		return nil, err
	}

	return &SummaryOutput{Text: text, Record: rec}, nil
}

func spanishYesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}
