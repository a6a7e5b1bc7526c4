package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPairKey_OrderIndependent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PairKey("alice", "bob"), PairKey("bob", "alice"))
	assert.Equal(t, "alice__bob", PairKey("bob", "alice"))
	assert.NotEqual(t, PairKey("alice", "bob"), PairKey("alice", "carol"))
}

func TestNewMatch(t *testing.T) {
	t.Parallel()

	now := time.Now()
	match := NewMatch("bob", "alice", now)

	assert.Equal(t, PairKey("alice", "bob"), match.ID)
	assert.Equal(t, [2]string{"alice", "bob"}, match.Users)
	assert.False(t, match.IsRead["alice"])
	assert.False(t, match.IsRead["bob"])
	assert.Len(t, match.IsRead, 2)
}

func TestMatch_Other(t *testing.T) {
	t.Parallel()

	match := NewMatch("alice", "bob", time.Now())

	assert.Equal(t, "bob", match.Other("alice"))
	assert.Equal(t, "alice", match.Other("bob"))
	assert.Empty(t, match.Other("mallory"))
	assert.True(t, match.HasParticipant("alice"))
	assert.False(t, match.HasParticipant("mallory"))
}
