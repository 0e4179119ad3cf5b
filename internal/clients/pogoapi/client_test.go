package pogoapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/teamvirrey/meetup-announcer/internal/clients/pogoapi"
	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/pkg/clock"
)

var fetchedAt = time.Date(2025, time.August, 25, 18, 0, 0, 0, time.UTC)

// Trimmed copies of the real bulk endpoint payloads
var fixtures = map[string]string{
	"/pokemon_names.json": `{
		"1": {"id": 1, "name": "Bulbasaur"},
		"6": {"id": 6, "name": "Charizard"},
		"4": {"id": 4, "name": "Charmander"}
	}`,
	"/pokemon_stats.json": `[
		{"pokemon_id": 1, "pokemon_name": "Bulbasaur", "form": "Normal", "base_attack": 118, "base_defense": 111, "base_stamina": 128},
		{"pokemon_id": 4, "pokemon_name": "Charmander", "form": "Normal", "base_attack": 116, "base_defense": 93, "base_stamina": 118},
		{"pokemon_id": 6, "pokemon_name": "Charizard", "form": "Mega", "base_attack": 319, "base_defense": 212, "base_stamina": 186},
		{"pokemon_id": 6, "pokemon_name": "Charizard", "form": "Normal", "base_attack": 223, "base_defense": 173, "base_stamina": 186}
	]`,
	"/pokemon_types.json": `[
		{"pokemon_id": 1, "pokemon_name": "Bulbasaur", "form": "Normal", "type": ["Grass", "Poison"]},
		{"pokemon_id": 4, "pokemon_name": "Charmander", "form": "Normal", "type": ["Fire"]},
		{"pokemon_id": 6, "pokemon_name": "Charizard", "form": "Normal", "type": ["Fire", "Flying"]}
	]`,
	"/pokemon_max_cp.json": `[
		{"pokemon_id": 1, "pokemon_name": "Bulbasaur", "form": "Normal", "max_cp": 1260},
		{"pokemon_id": 4, "pokemon_name": "Charmander", "form": "Normal", "max_cp": 1108},
		{"pokemon_id": 6, "pokemon_name": "Charizard", "form": "Normal", "max_cp": 3266}
	]`,
	"/shiny_pokemon.json":    `{"1": {"id": 1, "name": "Bulbasaur"}, "6": {"id": 6, "name": "Charizard"}}`,
	"/released_pokemon.json": `{"1": {"id": 1, "name": "Bulbasaur"}, "4": {"id": 4, "name": "Charmander"}, "6": {"id": 6, "name": "Charizard"}}`,
	"/pokemon_rarity.json": `{
		"Standard": [{"pokemon_id": 1, "pokemon_name": "Bulbasaur"}, {"pokemon_id": 4, "pokemon_name": "Charmander"}, {"pokemon_id": 6, "pokemon_name": "Charizard"}]
	}`,
	"/pokemon_buddy_distances.json": `{
		"3": [{"pokemon_id": 1}, {"pokemon_id": 4}, {"pokemon_id": 6}]
	}`,
	"/pokemon_candy_to_evolve.json": `{
		"25": [{"pokemon_id": 1}, {"pokemon_id": 4}],
		"100": [{"pokemon_id": 6}]
	}`,
}

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client pogoapi.Client
	ctx    context.Context

	mu       sync.Mutex
	requests map[string]int
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = make(map[string]int)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		s.mu.Unlock()

		body, ok := fixtures[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	client, err := pogoapi.New(&pogoapi.Config{
		BaseURL: s.server.URL,
		Clock:   clock.NewFixed(fetchedAt),
	})
	s.Require().NoError(err)
	s.client = client

	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) requestCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

func (s *ClientTestSuite) TestGetPokemon() {
	rec, err := s.client.GetPokemon(s.ctx, "bulbasaur")
	s.Require().NoError(err)

	s.Assert().Equal(1, rec.ID)
	s.Assert().Equal("Bulbasaur", rec.Name)
	s.Assert().Equal([]pokemon.Type{pokemon.TypeGrass, pokemon.TypePoison}, rec.Types)
	s.Assert().Equal(118, rec.BaseAttack)
	s.Assert().Equal(111, rec.BaseDefense)
	s.Assert().Equal(128, rec.BaseStamina)
	s.Assert().Equal(1260, rec.MaxCP)
	s.Assert().True(rec.IsShinyAvailable)
	s.Assert().True(rec.IsReleased)
	s.Assert().Equal("Standard", rec.Rarity)
	s.Assert().Equal(3, rec.BuddyDistance)
	s.Assert().Equal(25, rec.CandyToEvolve)
	s.Assert().Equal(fetchedAt, rec.FetchedAt)

	// CP must grow with level
	s.Assert().Greater(rec.CPLevel25, rec.CPLevel20)
	s.Assert().Greater(rec.CPLevel30, rec.CPLevel25)
	s.Assert().Greater(rec.CPLevel40, rec.CPLevel30)
}

func (s *ClientTestSuite) TestGetPokemonPrefersNormalForm() {
	rec, err := s.client.GetPokemon(s.ctx, "Charizard")
	s.Require().NoError(err)

	s.Assert().Equal(223, rec.BaseAttack)
	s.Assert().Equal(173, rec.BaseDefense)
	s.Assert().Equal(1651, rec.CPLevel20)
	s.Assert().Equal(2064, rec.CPLevel25)
	s.Assert().Equal(2476, rec.CPLevel30)
	s.Assert().Equal(2889, rec.CPLevel40)
	s.Assert().Equal(3266, rec.MaxCP)
}

func (s *ClientTestSuite) TestGetPokemonNotFound() {
	_, err := s.client.GetPokemon(s.ctx, "MissingNo")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetPokemonEmptyName() {
	_, err := s.client.GetPokemon(s.ctx, "   ")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestEndpointsFetchedOnce() {
	_, err := s.client.GetPokemon(s.ctx, "Bulbasaur")
	s.Require().NoError(err)
	_, err = s.client.GetPokemon(s.ctx, "Charizard")
	s.Require().NoError(err)

	s.Assert().Equal(1, s.requestCount("/pokemon_names.json"))
	s.Assert().Equal(1, s.requestCount("/pokemon_stats.json"))
	s.Assert().Equal(1, s.requestCount("/pokemon_max_cp.json"))
}

func (s *ClientTestSuite) TestSearchPokemon() {
	names, err := s.client.SearchPokemon(s.ctx, "char", 0)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Charizard", "Charmander"}, names)

	names, err = s.client.SearchPokemon(s.ctx, "CHAR", 1)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Charizard"}, names)

	names, err = s.client.SearchPokemon(s.ctx, "mew", 0)
	s.Require().NoError(err)
	s.Assert().Empty(names)

	_, err = s.client.SearchPokemon(s.ctx, "  ", 0)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestServerErrorIsUnavailable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := pogoapi.New(&pogoapi.Config{BaseURL: server.URL})
	s.Require().NoError(err)

	_, err = client.GetPokemon(s.ctx, "Bulbasaur")
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestUnreachableHostIsUnavailable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := pogoapi.New(&pogoapi.Config{BaseURL: server.URL})
	s.Require().NoError(err)

	_, err = client.GetPokemon(s.ctx, "Bulbasaur")
	s.Assert().True(errors.IsUnavailable(err))
}
