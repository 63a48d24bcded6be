//go:build integration
// +build integration

package lock_test

import (
	"context"
	"testing"
	"time"

	"teamup-backend/internal/lock"
	"teamup-backend/internal/testutils"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisLockerTestSuite struct {
	suite.Suite
	client *redis.Client
	locker *lock.RedisLocker
	ctx    context.Context
}

func (suite *RedisLockerTestSuite) SetupSuite() {
	suite.client = testutils.SetupRedis(suite.T())
	suite.locker = lock.NewRedisLocker(suite.client)
	suite.ctx = context.Background()
}

func (suite *RedisLockerTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(suite.ctx).Err())
}

func (suite *RedisLockerTestSuite) TestExclusive() {
	first, err := suite.locker.TryLock(suite.ctx, "join:team:1", 0)
	suite.Require().NoError(err)

	_, err = suite.locker.TryLock(suite.ctx, "join:team:1", 0)
	suite.ErrorIs(err, lock.ErrNotAcquired)

	suite.Require().NoError(first.Release(suite.ctx))

	_, err = suite.locker.TryLock(suite.ctx, "join:team:1", 0)
	suite.NoError(err)
}

func (suite *RedisLockerTestSuite) TestInfiniteLeaseHasNoTTL() {
	_, err := suite.locker.TryLock(suite.ctx, "k", 0)
	suite.Require().NoError(err)

	ttl, err := suite.client.TTL(suite.ctx, "k").Result()
	suite.Require().NoError(err)
	suite.Equal(time.Duration(-1), ttl)
}

func (suite *RedisLockerTestSuite) TestReleaseByNonHolderIsNoop() {
	stale, err := suite.locker.TryLock(suite.ctx, "k", 50*time.Millisecond)
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		return suite.client.Exists(suite.ctx, "k").Val() == 0
	}, time.Second, 10*time.Millisecond)

	current, err := suite.locker.TryLock(suite.ctx, "k", 0)
	suite.Require().NoError(err)

	suite.NoError(stale.Release(suite.ctx))
	suite.Equal(int64(1), suite.client.Exists(suite.ctx, "k").Val())

	suite.NoError(current.Release(suite.ctx))
	suite.Equal(int64(0), suite.client.Exists(suite.ctx, "k").Val())
}

func (suite *RedisLockerTestSuite) TestAcquirerRetriesAgainstRedis() {
	acquirer := lock.NewAcquirer(suite.locker, lock.Options{Prefix: "teamup:", InitialInterval: time.Millisecond})

	first, ok, err := acquirer.TryAcquire(suite.ctx, "k", 0, 0)
	suite.Require().NoError(err)
	suite.Require().True(ok)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = first.Release(context.Background())
	}()

	second, ok, err := acquirer.TryAcquire(suite.ctx, "k", time.Second, 0)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.NoError(second.Release(suite.ctx))
}

func TestRedisLockerTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerTestSuite))
}
