package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce     sync.Once
	redisInitErr  error
	redisPool     *dockertest.Pool
	redisResource *dockertest.Resource
	redisClient   *redis.Client
)

// SetupRedis starts (once) a shared Redis container and returns a client on a freshly
// flushed database.
func SetupRedis(t *testing.T) *redis.Client {
	redisOnce.Do(func() { redisInitErr = initSharedRedisContainer() })
	if redisInitErr != nil {
		t.Fatalf("failed to initialize shared redis container: %v", redisInitErr)
	}
	if err := redisClient.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
	return redisClient
}

func initSharedRedisContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	redisPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start redis: %w", err)
	}
	redisResource = resource

	addr := "127.0.0.1:" + resource.GetPort("6379/tcp")
	pool.MaxWait = time.Minute
	if err := pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return err
		}
		redisClient = client
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker redis: %w", err)
	}

	log.Printf("Shared Redis ready on %s", addr)
	return nil
}

func cleanupSharedRedis() {
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
	if redisPool != nil && redisResource != nil {
		log.Printf("Purging Docker container: %s", redisResource.Container.Name)
		if err := redisPool.Purge(redisResource); err != nil {
			log.Printf("WARN: could not purge redis resource: %v", err)
		}
		redisResource = nil
		redisPool = nil
	}
}
