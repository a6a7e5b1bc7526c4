// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// User is the core entity in the system, representing one dating profile.
// The ID is the opaque account key issued by the auth backend; nothing in
// the engine depends on its format beyond uniqueness.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Gender    string    `json:"gender" firestore:"gender"`
	BirthDate time.Time `json:"birth_date" firestore:"birthDate"`
	Bio       string    `json:"bio" firestore:"bio"`
	PhotoKeys []string  `json:"photo_keys" firestore:"photoKeys"` // Object-store keys of the profile photos.

	// Location is optional. A user without a location never appears in
	// proximity results.
	Location *Location `json:"location,omitempty" firestore:"location"`

	// Likes holds the IDs of users this user has liked (outgoing edges).
	// LikedBy holds the IDs of users who liked this user (incoming edges).
	// The two sets of any pair of profiles are only ever mutated together,
	// inside a single store transaction, so that for all (A,B):
	// A in LikedBy(B) iff B in Likes(A).
	Likes   []string `json:"likes" firestore:"likes"`
	LikedBy []string `json:"liked_by" firestore:"likedBy"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasLiked reports whether the user's outgoing like set contains targetID.
func (u *User) HasLiked(targetID string) bool {
	return slices.Contains(u.Likes, targetID)
}

// Age returns the user's age in full years at the given instant.
func (u *User) Age(now time.Time) int {
	age := now.Year() - u.BirthDate.Year()
	anniversary := u.BirthDate.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}

	return age
}
