package build_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/errors"
	"github.com/gwforge/builds-api/internal/pkg/clock"
	"github.com/gwforge/builds-api/internal/redis"
	buildrepo "github.com/gwforge/builds-api/internal/repositories/build"
	"github.com/gwforge/builds-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	repo    buildrepo.Repository
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, err := buildrepo.NewRedis(&buildrepo.RedisConfig{
		Client: s.client,
		Clock:  clock.NewFixed(s.now),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testBuild(id, playerID string) *buildrepo.Data {
	return &buildrepo.Data{
		ID:        id,
		PlayerID:  playerID,
		Name:      "Axe Pressure",
		Primary:   gw.ProfessionWarrior,
		Secondary: gw.ProfessionMonk,
		Equipment: buildrepo.EquipmentData{
			WeaponSets: []buildrepo.WeaponSetData{{
				MainHand: buildrepo.WeaponData{ItemID: 1, PrefixID: 204, SuffixID: 252},
				OffHand:  buildrepo.WeaponData{ItemID: 26},
			}},
			Armor: buildrepo.ArmorData{
				Pieces: map[gw.ArmorSlot]buildrepo.ArmorPieceData{
					gw.ArmorChest: {RuneID: 158, InsigniaID: 290},
				},
				HeadAttribute: "Strength",
			},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, buildrepo.CreateInput{
		BuildData: s.testBuild("build_1", "player_1"),
	})
	s.Require().NoError(err)
	s.Equal(s.now, created.BuildData.CreatedAt)
	s.Equal(s.now, created.BuildData.UpdatedAt)

	got, err := s.repo.Get(s.ctx, buildrepo.GetInput{ID: "build_1"})
	s.Require().NoError(err)
	s.Equal("Axe Pressure", got.BuildData.Name)
	s.Equal(gw.ProfessionWarrior, got.BuildData.Primary)
	s.Equal(158, got.BuildData.Equipment.Armor.Pieces[gw.ArmorChest].RuneID)
	s.Equal(1, got.BuildData.Equipment.WeaponSets[0].MainHand.ItemID)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, buildrepo.CreateInput{BuildData: &buildrepo.Data{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{
		BuildData: s.testBuild("build_1", "player_1"),
	})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, buildrepo.CreateInput{
		BuildData: s.testBuild("build_1", "player_2"),
	})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, buildrepo.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, buildrepo.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdatePreservesCreatedAt() {
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{
		BuildData: s.testBuild("build_1", "player_1"),
	})
	s.Require().NoError(err)

	changed := s.testBuild("build_1", "player_1")
	changed.Name = "Hammer Pressure"
	updated, err := s.repo.Update(s.ctx, buildrepo.UpdateInput{BuildData: changed})
	s.Require().NoError(err)
	s.True(updated.BuildData.CreatedAt.Equal(s.now))

	got, err := s.repo.Get(s.ctx, buildrepo.GetInput{ID: "build_1"})
	s.Require().NoError(err)
	s.Equal("Hammer Pressure", got.BuildData.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, buildrepo.UpdateInput{
		BuildData: s.testBuild("missing", "player_1"),
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateReindexesPlayer() {
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{
		BuildData: s.testBuild("build_1", "player_1"),
	})
	s.Require().NoError(err)

	moved := s.testBuild("build_1", "player_2")
	_, err = s.repo.Update(s.ctx, buildrepo.UpdateInput{BuildData: moved})
	s.Require().NoError(err)

	old, err := s.repo.ListByPlayerID(s.ctx, buildrepo.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(old.Builds)

	current, err := s.repo.ListByPlayerID(s.ctx, buildrepo.ListByPlayerIDInput{PlayerID: "player_2"})
	s.Require().NoError(err)
	s.Require().Len(current.Builds, 1)
	s.Equal("build_1", current.Builds[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{
		BuildData: s.testBuild("build_1", "player_1"),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, buildrepo.DeleteInput{ID: "build_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, buildrepo.GetInput{ID: "build_1"})
	s.True(errors.IsNotFound(err))

	listed, err := s.repo.ListByPlayerID(s.ctx, buildrepo.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(listed.Builds)
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, buildrepo.DeleteInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	for _, id := range []string{"build_1", "build_2", "build_3"} {
		player := "player_1"
		if id == "build_3" {
			player = "player_2"
		}
		_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{
			BuildData: s.testBuild(id, player),
		})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListByPlayerID(s.ctx, buildrepo.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(listed.Builds, 2)

	ids := []string{listed.Builds[0].ID, listed.Builds[1].ID}
	sort.Strings(ids)
	s.Equal([]string{"build_1", "build_2"}, ids)

	_, err = s.repo.ListByPlayerID(s.ctx, buildrepo.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListUnknownPlayerIsEmpty() {
	listed, err := s.repo.ListByPlayerID(s.ctx, buildrepo.ListByPlayerIDInput{PlayerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(listed.Builds)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
