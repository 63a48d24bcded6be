//go:build integration
// +build integration

package cache_test

import (
	"os"
	"testing"

	"teamup-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
