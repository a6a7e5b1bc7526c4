package entity

import "time"

// UserDevice is one push-capable device registration for a user.
type UserDevice struct {
	UserID       string    `json:"user_id" firestore:"userId"`
	FCMToken     string    `json:"fcm_token" firestore:"fcmToken"`
	Platform     string    `json:"platform" firestore:"platform"` // ios / android
	RegisteredAt time.Time `json:"registered_at" firestore:"registeredAt"`
}
