//go:build integration
// +build integration

package repository_test

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"teamup-backend/internal/testutils"
)

// TestMain ensures the shared Postgres container is purged when repository tests end,
// including on interruption
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Repository tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
