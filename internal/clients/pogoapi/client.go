// Package pogoapi is the client for the PoGoAPI.net Pokémon Go data API
package pogoapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/gamemath"
	"github.com/teamvirrey/meetup-announcer/internal/pkg/clock"
)

// The CP levels announcement templates quote
var announcedLevels = []float64{20, 25, 30, 40}

// Client defines the interface for PoGo API interactions
type Client interface {
	// GetPokemon fetches a Pokémon by exact name (case-insensitive).
	// Returns errors.NotFound if no Pokémon has the name
	// Returns errors.Unavailable on transport or HTTP failures
	GetPokemon(ctx context.Context, name string) (*pokemon.Record, error)

	// SearchPokemon returns names containing the partial name,
	// case-insensitively, sorted, capped at limit (zero = no cap)
	SearchPokemon(ctx context.Context, partialName string, limit int) ([]string, error)
}

// Config contains configuration options for the PoGo API client.
type Config struct {
	// BaseURL for the API (optional, defaults to https://pogoapi.net/api/v1)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
	// Clock stamps fetched records (optional, defaults to real time)
	Clock clock.Clock
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pogoapi.net/api/v1"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock

	// The API serves bulk files, so each endpoint is fetched at most
	// once per process and indexed by Pokédex id.
	mu            sync.Mutex
	names         map[int]string
	stats         map[int]statsEntry
	types         map[int][]pokemon.Type
	maxCP         map[int]int
	shiny         map[int]bool
	released      map[int]bool
	rarity        map[int]string
	buddyDistance map[int]int
	candyToEvolve map[int]int
}

// New creates a new PoGo API client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		clock:      cfg.Clock,
	}, nil
}

func (c *client) fetchJSON(ctx context.Context, endpoint string, target interface{}) error {
	url := c.baseURL + "/" + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "pogoapi unreachable fetching %s", endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Unavailablef("pogoapi returned %d fetching %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", endpoint)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.Wrapf(err, "failed to decode %s", endpoint)
	}
	return nil
}

func (c *client) loadNames(ctx context.Context) (map[int]string, error) {
	if c.names != nil {
		return c.names, nil
	}

	var raw map[string]nameEntry
	if err := c.fetchJSON(ctx, "pokemon_names.json", &raw); err != nil {
		return nil, err
	}

	names := make(map[int]string, len(raw))
	for _, entry := range raw {
		names[entry.ID] = entry.Name
	}
	c.names = names
	return names, nil
}

func (c *client) loadStats(ctx context.Context) (map[int]statsEntry, error) {
	if c.stats != nil {
		return c.stats, nil
	}

	var raw []statsEntry
	if err := c.fetchJSON(ctx, "pokemon_stats.json", &raw); err != nil {
		return nil, err
	}

	// Several forms share an id; prefer the Normal form
	stats := make(map[int]statsEntry, len(raw))
	for _, entry := range raw {
		if existing, ok := stats[entry.PokemonID]; ok && existing.Form == "Normal" && entry.Form != "Normal" {
			continue
		}
		stats[entry.PokemonID] = entry
	}
	c.stats = stats
	return stats, nil
}

func (c *client) loadTypes(ctx context.Context) (map[int][]pokemon.Type, error) {
	if c.types != nil {
		return c.types, nil
	}

	var raw []typesEntry
	if err := c.fetchJSON(ctx, "pokemon_types.json", &raw); err != nil {
		return nil, err
	}

	types := make(map[int][]pokemon.Type, len(raw))
	for _, entry := range raw {
		if _, ok := types[entry.PokemonID]; ok && entry.Form != "Normal" {
			continue
		}
		var parsed []pokemon.Type
		for _, name := range entry.Type {
			if t, ok := pokemon.ParseType(name); ok {
				parsed = append(parsed, t)
			}
		}
		types[entry.PokemonID] = parsed
	}
	c.types = types
	return types, nil
}

func (c *client) loadMaxCP(ctx context.Context) (map[int]int, error) {
	if c.maxCP != nil {
		return c.maxCP, nil
	}

	var raw []maxCPEntry
	if err := c.fetchJSON(ctx, "pokemon_max_cp.json", &raw); err != nil {
		return nil, err
	}

	maxCP := make(map[int]int, len(raw))
	seen := make(map[int]string, len(raw))
	for _, entry := range raw {
		if form, ok := seen[entry.PokemonID]; ok && form == "Normal" && entry.Form != "Normal" {
			continue
		}
		maxCP[entry.PokemonID] = entry.MaxCP
		seen[entry.PokemonID] = entry.Form
	}
	c.maxCP = maxCP
	return maxCP, nil
}

func (c *client) loadIDSet(ctx context.Context, endpoint string, cache *map[int]bool) (map[int]bool, error) {
	if *cache != nil {
		return *cache, nil
	}

	var raw map[string]json.RawMessage
	if err := c.fetchJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	set := make(map[int]bool, len(raw))
	for key := range raw {
		if id, err := strconv.Atoi(key); err == nil {
			set[id] = true
		}
	}
	*cache = set
	return set, nil
}

func (c *client) loadRarity(ctx context.Context) (map[int]string, error) {
	if c.rarity != nil {
		return c.rarity, nil
	}

	var raw map[string][]rarityEntry
	if err := c.fetchJSON(ctx, "pokemon_rarity.json", &raw); err != nil {
		return nil, err
	}

	rarity := make(map[int]string)
	for tier, entries := range raw {
		for _, entry := range entries {
			rarity[entry.PokemonID] = tier
		}
	}
	c.rarity = rarity
	return rarity, nil
}

// loadGrouped flattens endpoints shaped as {"<number>": [{pokemon_id}, ...]}
func (c *client) loadGrouped(ctx context.Context, endpoint string, cache *map[int]int) (map[int]int, error) {
	if *cache != nil {
		return *cache, nil
	}

	var raw map[string][]idEntry
	if err := c.fetchJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	grouped := make(map[int]int)
	for key, entries := range raw {
		value, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			grouped[entry.PokemonID] = value
		}
	}
	*cache = grouped
	return grouped, nil
}

func (c *client) GetPokemon(ctx context.Context, name string) (*pokemon.Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	names, err := c.loadNames(ctx)
	if err != nil {
		return nil, err
	}

	id := 0
	canonical := ""
	for pid, pname := range names {
		if strings.EqualFold(pname, name) {
			id = pid
			canonical = pname
			break
		}
	}
	if id == 0 {
		return nil, errors.NotFoundf("pokemon %q not found", name)
	}

	stats, err := c.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	st, ok := stats[id]
	if !ok {
		return nil, errors.NotFoundf("no stats published for %s (#%d)", canonical, id)
	}

	types, err := c.loadTypes(ctx)
	if err != nil {
		return nil, err
	}
	maxCP, err := c.loadMaxCP(ctx)
	if err != nil {
		return nil, err
	}
	shiny, err := c.loadIDSet(ctx, "shiny_pokemon.json", &c.shiny)
	if err != nil {
		return nil, err
	}
	released, err := c.loadIDSet(ctx, "released_pokemon.json", &c.released)
	if err != nil {
		return nil, err
	}
	rarity, err := c.loadRarity(ctx)
	if err != nil {
		return nil, err
	}
	buddy, err := c.loadGrouped(ctx, "pokemon_buddy_distances.json", &c.buddyDistance)
	if err != nil {
		return nil, err
	}
	candy, err := c.loadGrouped(ctx, "pokemon_candy_to_evolve.json", &c.candyToEvolve)
	if err != nil {
		return nil, err
	}

	rec := &pokemon.Record{
		ID:               id,
		Name:             canonical,
		Types:            types[id],
		BaseAttack:       st.BaseAttack,
		BaseDefense:      st.BaseDefense,
		BaseStamina:      st.BaseStamina,
		IsShinyAvailable: shiny[id],
		IsReleased:       released[id],
		Rarity:           rarity[id],
		Form:             "Normal",
		BuddyDistance:    buddy[id],
		CandyToEvolve:    candy[id],
		FetchedAt:        c.clock.Now(),
	}

	cps := make([]int, len(announcedLevels))
	for i, level := range announcedLevels {
		cp, err := gamemath.CPAtLevel(st.BaseAttack, st.BaseDefense, st.BaseStamina, level)
		if err != nil {
			return nil, errors.Wrapf(err, "bad stats published for %s (#%d)", canonical, id)
		}
		cps[i] = cp
	}
	rec.CPLevel20, rec.CPLevel25, rec.CPLevel30, rec.CPLevel40 = cps[0], cps[1], cps[2], cps[3]

	rec.MaxCP = maxCP[id]
	if rec.MaxCP == 0 {
		rec.MaxCP = rec.CPLevel40
	}

	return rec, nil
}

func (c *client) SearchPokemon(ctx context.Context, partialName string, limit int) ([]string, error) {
	partial := strings.ToLower(strings.TrimSpace(partialName))
	if partial == "" {
		return nil, errors.InvalidArgument("partial name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	names, err := c.loadNames(ctx)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), partial) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
