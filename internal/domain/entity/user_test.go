package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_Age(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		expected  int
	}{
		{name: "birthday already passed this year", birthDate: time.Date(1996, 3, 15, 0, 0, 0, 0, time.UTC), expected: 30},
		{name: "birthday later this year", birthDate: time.Date(1996, 11, 2, 0, 0, 0, 0, time.UTC), expected: 29},
		{name: "birthday today", birthDate: time.Date(1996, 8, 29, 0, 0, 0, 0, time.UTC), expected: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user := &User{BirthDate: tt.birthDate}
			assert.Equal(t, tt.expected, user.Age(now))
		})
	}
}

func TestUser_HasLiked(t *testing.T) {
	t.Parallel()

	user := &User{Likes: []string{"bob", "carol"}}

	assert.True(t, user.HasLiked("bob"))
	assert.False(t, user.HasLiked("dave"))
}
