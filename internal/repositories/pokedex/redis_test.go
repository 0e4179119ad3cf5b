package pokedex_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/pkg/clock"
	redisclient "github.com/teamvirrey/meetup-announcer/internal/redis"
	"github.com/teamvirrey/meetup-announcer/internal/repositories/pokedex"
	"github.com/teamvirrey/meetup-announcer/internal/testutils"
)

var fixedNow = time.Date(2025, time.August, 25, 18, 0, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    pokedex.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := pokedex.NewRedis(&pokedex.RedisConfig{
		Client: s.client,
		Clock:  clock.NewFixed(fixedNow),
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newRecord(id int, name string) *pokemon.Record {
	return &pokemon.Record{
		ID:          id,
		Name:        name,
		Types:       []pokemon.Type{pokemon.TypeFire},
		BaseAttack:  223,
		BaseDefense: 173,
		BaseStamina: 186,
		CPLevel20:   1651,
		CPLevel25:   2064,
		CPLevel30:   2476,
		CPLevel40:   2889,
		MaxCP:       2889,
		Form:        "Normal",
	}
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := pokedex.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = pokedex.NewRedis(&pokedex.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutValidation() {
	_, err := s.repo.Put(s.ctx, pokedex.PutInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, pokedex.PutInput{Record: &pokemon.Record{Name: "Charizard"}})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, pokedex.PutInput{Record: &pokemon.Record{ID: 6}})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutGetRoundTrip() {
	rec := s.newRecord(6, "Charizard")

	putOut, err := s.repo.Put(s.ctx, pokedex.PutInput{Record: rec})
	s.Require().NoError(err)
	s.Assert().Equal(fixedNow, putOut.Record.FetchedAt)

	// By ID
	got, err := s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "6"})
	s.Require().NoError(err)
	s.Assert().Equal(putOut.Record, got.Record)

	// By name, case-insensitive
	got, err = s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "cHaRiZaRd"})
	s.Require().NoError(err)
	s.Assert().Equal("Charizard", got.Record.Name)
	s.Assert().Equal(1651, got.Record.CPLevel20)
}

func (s *RedisRepositoryTestSuite) TestGetMiss() {
	_, err := s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "mewtwo"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "150"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "  "})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutOverwritesNotDuplicates() {
	first := s.newRecord(6, "Charizard")
	_, err := s.repo.Put(s.ctx, pokedex.PutInput{Record: first})
	s.Require().NoError(err)

	refreshed := s.newRecord(6, "Charizard")
	refreshed.BaseAttack = 225
	_, err = s.repo.Put(s.ctx, pokedex.PutInput{Record: refreshed})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "charizard"})
	s.Require().NoError(err)
	s.Assert().Equal(225, got.Record.BaseAttack)

	stats, err := s.repo.Stats(s.ctx, pokedex.StatsInput{})
	s.Require().NoError(err)
	s.Assert().Equal(1, stats.Count)
}

func (s *RedisRepositoryTestSuite) TestPutRenameDropsStaleIndexEntry() {
	_, err := s.repo.Put(s.ctx, pokedex.PutInput{Record: s.newRecord(6, "Charizar")})
	s.Require().NoError(err)

	_, err = s.repo.Put(s.ctx, pokedex.PutInput{Record: s.newRecord(6, "Charizard")})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "charizar"})
	s.Assert().True(errors.IsNotFound(err))

	got, err := s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "charizard"})
	s.Require().NoError(err)
	s.Assert().Equal(6, got.Record.ID)
}

func (s *RedisRepositoryTestSuite) TestSearch() {
	_, err := s.repo.Put(s.ctx, pokedex.PutInput{Record: s.newRecord(4, "Charmander")})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, pokedex.PutInput{Record: s.newRecord(6, "Charizard")})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, pokedex.PutInput{Record: s.newRecord(25, "Pikachu")})
	s.Require().NoError(err)

	out, err := s.repo.Search(s.ctx, pokedex.SearchInput{PartialName: "CHAR"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Assert().Equal("Charizard", out.Records[0].Name)
	s.Assert().Equal("Charmander", out.Records[1].Name)

	out, err = s.repo.Search(s.ctx, pokedex.SearchInput{PartialName: "char", Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
	s.Assert().Equal("Charizard", out.Records[0].Name)

	out, err = s.repo.Search(s.ctx, pokedex.SearchInput{PartialName: "zzz"})
	s.Require().NoError(err)
	s.Assert().Empty(out.Records)

	_, err = s.repo.Search(s.ctx, pokedex.SearchInput{PartialName: " "})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListDeleteClear() {
	for id, name := range map[int]string{4: "Charmander", 6: "Charizard", 25: "Pikachu"} {
		_, err := s.repo.Put(s.ctx, pokedex.PutInput{Record: s.newRecord(id, name)})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, pokedex.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 3)
	s.Assert().Equal("Charizard", list.Records[0].Name)

	list, err = s.repo.List(s.ctx, pokedex.ListInput{Limit: 2})
	s.Require().NoError(err)
	s.Assert().Len(list.Records, 2)

	_, err = s.repo.Delete(s.ctx, pokedex.DeleteInput{ID: 25})
	s.Require().NoError(err)
	_, err = s.repo.Get(s.ctx, pokedex.GetInput{IDOrName: "pikachu"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, pokedex.DeleteInput{ID: 25})
	s.Assert().True(errors.IsNotFound(err))

	cleared, err := s.repo.Clear(s.ctx, pokedex.ClearInput{})
	s.Require().NoError(err)
	s.Assert().Equal(2, cleared.Deleted)

	stats, err := s.repo.Stats(s.ctx, pokedex.StatsInput{})
	s.Require().NoError(err)
	s.Assert().Equal(0, stats.Count)
}

func TestGetSeededRecords(t *testing.T) {
	seeded := &pokemon.Record{
		ID:          150,
		Name:        "Mewtwo",
		Types:       []pokemon.Type{pokemon.TypePsychic},
		BaseAttack:  300,
		BaseDefense: 182,
		BaseStamina: 214,
		Rarity:      "Legendary",
		FetchedAt:   fixedNow,
	}
	data, err := json.Marshal(seeded)
	require.NoError(t, err)

	client, cleanup := testutils.CreateTestRedisClientWithData(t, func(mr *miniredis.Miniredis) {
		require.NoError(t, mr.Set("pokedex:id:150", string(data)))
		mr.HSet("pokedex:names", "mewtwo", "150")
	})
	defer cleanup()

	repo, err := pokedex.NewRedis(&pokedex.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(fixedNow),
	})
	require.NoError(t, err)

	ctx := context.Background()

	got, err := repo.Get(ctx, pokedex.GetInput{IDOrName: "Mewtwo"})
	require.NoError(t, err)
	assert.Equal(t, 150, got.Record.ID)
	assert.Equal(t, "Mewtwo", got.Record.Name)
	assert.Equal(t, 300, got.Record.BaseAttack)
	assert.Equal(t, "Legendary", got.Record.Rarity)
	assert.True(t, got.Record.FetchedAt.Equal(fixedNow))

	got, err = repo.Get(ctx, pokedex.GetInput{IDOrName: "150"})
	require.NoError(t, err)
	assert.Equal(t, "Mewtwo", got.Record.Name)
}

func TestGetCorruptSeededRecord(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithData(t, func(mr *miniredis.Miniredis) {
		require.NoError(t, mr.Set("pokedex:id:151", "{not json"))
		mr.HSet("pokedex:names", "mew", "151")
	})
	defer cleanup()

	repo, err := pokedex.NewRedis(&pokedex.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(fixedNow),
	})
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), pokedex.GetInput{IDOrName: "Mew"})
	require.Error(t, err)
	assert.False(t, errors.IsNotFound(err))
}
