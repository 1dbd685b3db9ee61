package build

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/gwforge/builds-api/internal/errors"
	"github.com/gwforge/builds-api/internal/pkg/clock"
	redisclient "github.com/gwforge/builds-api/internal/redis"
)

const (
	buildKeyPrefix    = "build:"
	playerIndexPrefix = "build:player:"

	// Error messages
	errBuildNil      = "build cannot be nil"
	errBuildIDEmpty  = "build ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis build repository.
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

// NewRedis creates a new Redis-backed build repository
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

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.BuildData == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if input.BuildData.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	key := buildKeyPrefix + input.BuildData.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("build with ID %s already exists", input.BuildData.ID)
	}

	now := r.clock.Now()
	input.BuildData.CreatedAt = now
	input.BuildData.UpdatedAt = now

	data, err := json.Marshal(input.BuildData)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // builds have no TTL
	if input.BuildData.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.BuildData.PlayerID, input.BuildData.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create build")
	}

	return &CreateOutput{BuildData: input.BuildData}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("build with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get build")
	}

	var buildData Data
	if err := json.Unmarshal([]byte(data), &buildData); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build data")
	}

	return &GetOutput{BuildData: &buildData}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.BuildData == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if input.BuildData.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.BuildData.ID})
	if err != nil {
		return nil, err
	}

	input.BuildData.CreatedAt = existing.BuildData.CreatedAt
	input.BuildData.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.BuildData)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, buildKeyPrefix+input.BuildData.ID, data, 0)
	// Keep the player index coherent if ownership moved.
	if existing.BuildData.PlayerID != input.BuildData.PlayerID {
		if existing.BuildData.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+existing.BuildData.PlayerID, input.BuildData.ID)
		}
		if input.BuildData.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.BuildData.PlayerID, input.BuildData.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update build")
	}

	return &UpdateOutput{BuildData: input.BuildData}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, buildKeyPrefix+input.ID)
	if existing.BuildData.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+existing.BuildData.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete build")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list builds")
	}

	builds := make([]*Data, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A stale index entry is not fatal; skip it.
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		builds = append(builds, out.BuildData)
	}

	return &ListByPlayerIDOutput{Builds: builds}, nil
}
