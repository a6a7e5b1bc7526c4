package entity

import (
	"time"
)

// Match materializes a mutual like between two users. A Match exists for a
// pair iff both users currently like each other; there is at most one per
// unordered pair, enforced by using the canonical pair key as the document ID.
type Match struct {
	ID        string    `json:"id" firestore:"id"`
	Users     [2]string `json:"users" firestore:"users"` // Sorted ascending; the unordered pair.
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`

	// IsRead carries exactly one entry per participant, both false at
	// creation. Entries only ever flip to true.
	IsRead map[string]bool `json:"is_read" firestore:"isRead"`
}

// PairKey returns the canonical match ID for the unordered pair (a, b):
// the two user IDs sorted and joined. PairKey(a,b) == PairKey(b,a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "__" + b
}

// NewMatch creates a Match for the pair with both read flags false.
func NewMatch(a, b string, now time.Time) *Match {
	if b < a {
		a, b = b, a
	}

	return &Match{
		ID:        PairKey(a, b),
		Users:     [2]string{a, b},
		CreatedAt: now,
		IsRead:    map[string]bool{a: false, b: false},
	}
}

// HasParticipant reports whether userID is one of the two match users.
func (m *Match) HasParticipant(userID string) bool {
	return m.Users[0] == userID || m.Users[1] == userID
}

// Other returns the participant that is not userID. Empty string when
// userID is not a participant.
func (m *Match) Other(userID string) string {
	switch userID {
	case m.Users[0]:
		return m.Users[1]
	case m.Users[1]:
		return m.Users[0]
	}

	return ""
}
