//go:build integration
// +build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"teamup-backend/internal/cache"
	"teamup-backend/internal/service"
	"teamup-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisCacheTestSuite struct {
	suite.Suite
	client *redis.Client
	cache  *cache.RedisCache
	ctx    context.Context
}

func (suite *RedisCacheTestSuite) SetupSuite() {
	suite.client = testutils.SetupRedis(suite.T())
	suite.cache = cache.NewRedisCache(suite.client)
	suite.ctx = context.Background()
}

func (suite *RedisCacheTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(suite.ctx).Err())
}

func (suite *RedisCacheTestSuite) TestMiss() {
	var page service.UserPage
	hit, err := suite.cache.Get(suite.ctx, "absent", &page)
	suite.NoError(err)
	suite.False(hit)
}

func (suite *RedisCacheTestSuite) TestSetThenGet() {
	want := service.UserPage{
		Users:    []service.UserView{{ID: uuid.New(), Username: "alice", Tags: []string{"go", "java"}}},
		Total:    1,
		Page:     1,
		PageSize: 10,
	}
	suite.Require().NoError(suite.cache.Set(suite.ctx, "k", want, time.Minute))

	var got service.UserPage
	hit, err := suite.cache.Get(suite.ctx, "k", &got)
	suite.Require().NoError(err)
	suite.True(hit)
	suite.Equal(want.Users[0].ID, got.Users[0].ID)
	suite.Equal(want.Users[0].Tags, got.Users[0].Tags)

	ttl := suite.client.TTL(suite.ctx, "k").Val()
	suite.Greater(ttl, time.Duration(0))
}

func (suite *RedisCacheTestSuite) TestDelete() {
	suite.Require().NoError(suite.cache.Set(suite.ctx, "k", 1, 0))
	suite.Require().NoError(suite.cache.Delete(suite.ctx, "k"))

	var v int
	hit, err := suite.cache.Get(suite.ctx, "k", &v)
	suite.NoError(err)
	suite.False(hit)
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}
