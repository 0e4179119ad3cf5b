package pokedex

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
	"github.com/teamvirrey/meetup-announcer/internal/errors"
	"github.com/teamvirrey/meetup-announcer/internal/pkg/clock"
	redisclient "github.com/teamvirrey/meetup-announcer/internal/redis"
)

const (
	recordKeyPrefix = "pokedex:id:"
	// nameIndexKey is a hash of lowercased name -> id, so that id and
	// name lookups resolve to the same record
	nameIndexKey = "pokedex:names"

	// Error messages
	errRecordNil   = "record cannot be nil"
	errRecordID    = "record ID must be positive"
	errRecordName  = "record name cannot be empty"
	errKeyEmpty    = "id or name cannot be empty"
	errPartialName = "partial name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis pokedex repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed pokedex repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func recordKey(id int) string {
	return recordKeyPrefix + strconv.Itoa(id)
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	rec := input.Record
	if rec == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if rec.ID <= 0 {
		return nil, errors.InvalidArgument(errRecordID)
	}
	if rec.Name == "" {
		return nil, errors.InvalidArgument(errRecordName)
	}

	stored := *rec
	if stored.FetchedAt.IsZero() {
		stored.FetchedAt = r.clock.Now()
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record")
	}

	// A re-put under a new name must drop the stale name index entry
	var staleName string
	if existing, err := r.getByID(ctx, stored.ID); err == nil {
		if !strings.EqualFold(existing.Name, stored.Name) {
			staleName = strings.ToLower(existing.Name)
		}
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(stored.ID), data, 0) // no TTL, refresh is user-driven
	pipe.HSet(ctx, nameIndexKey, strings.ToLower(stored.Name), stored.ID)
	if staleName != "" {
		pipe.HDel(ctx, nameIndexKey, staleName)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store record")
	}

	return &PutOutput{Record: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key := strings.TrimSpace(input.IDOrName)
	if key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	if id, err := strconv.Atoi(key); err == nil {
		rec, err := r.getByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &GetOutput{Record: rec}, nil
	}

	idStr, err := r.client.HGet(ctx, nameIndexKey, strings.ToLower(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pokemon %q not found in cache", key)
		}
		return nil, errors.Wrapf(err, "failed to look up name index")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt name index entry for %q", key)
	}

	rec, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: rec}, nil
}

func (r *redisRepository) getByID(ctx context.Context, id int) (*pokemon.Record, error) {
	result, err := r.client.Get(ctx, recordKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pokemon #%d not found in cache", id)
		}
		return nil, errors.Wrapf(err, "failed to get record")
	}

	var rec pokemon.Record
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}
	return &rec, nil
}

func (r *redisRepository) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	partial := strings.ToLower(strings.TrimSpace(input.PartialName))
	if partial == "" {
		return nil, errors.InvalidArgument(errPartialName)
	}

	index, err := r.client.HGetAll(ctx, nameIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read name index")
	}

	var names []string
	for name := range index {
		if strings.Contains(name, partial) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if input.Limit > 0 && len(names) > input.Limit {
		names = names[:input.Limit]
	}

	records := make([]*pokemon.Record, 0, len(names))
	for _, name := range names {
		id, err := strconv.Atoi(index[name])
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt name index entry for %q", name)
		}
		rec, err := r.getByID(ctx, id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &SearchOutput{Records: records}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	index, err := r.client.HGetAll(ctx, nameIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read name index")
	}

	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	if input.Limit > 0 && len(names) > input.Limit {
		names = names[:input.Limit]
	}

	records := make([]*pokemon.Record, 0, len(names))
	for _, name := range names {
		id, err := strconv.Atoi(index[name])
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt name index entry for %q", name)
		}
		rec, err := r.getByID(ctx, id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &ListOutput{Records: records}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	rec, err := r.getByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, recordKey(input.ID))
	pipe.HDel(ctx, nameIndexKey, strings.ToLower(rec.Name))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete record")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	index, err := r.client.HGetAll(ctx, nameIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read name index")
	}

	pipe := r.client.TxPipeline()
	for _, idStr := range index {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		pipe.Del(ctx, recordKey(id))
	}
	pipe.Del(ctx, nameIndexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear cache")
	}

	return &ClearOutput{Deleted: len(index)}, nil
}

func (r *redisRepository) Stats(ctx context.Context, input StatsInput) (*StatsOutput, error) {
	count, err := r.client.HLen(ctx, nameIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count records")
	}

	return &StatsOutput{Count: int(count)}, nil
}
