package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeamIsExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	testCases := []struct {
		name     string
		expire   *time.Time
		expected bool
	}{
		{"no expire time", nil, false},
		{"expires later", at(time.Second), false},
		{"expires exactly now", at(0), true},
		{"expired earlier", at(-time.Second), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			team := &Team{ExpireTime: tc.expire}
			assert.Equal(t, tc.expected, team.IsExpired(now))
		})
	}
}

func TestParseTeamStatus(t *testing.T) {
	for _, in := range []string{"secret", "SECRET", "Secret", " secret "} {
		status, ok := ParseTeamStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, TeamStatusSecret, status, in)
	}

	_, ok := ParseTeamStatus("hidden")
	assert.False(t, ok)
}
