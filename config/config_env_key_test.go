package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"inMemory": false,
			"firestore": map[string]any{
				"projectId": "",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"matching": map[string]any{
			"dailyLikeLimit": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_INMEMORY", want: "store.inMemory"},
		{envKey: "STORE_FIRESTORE_PROJECTID", want: "store.firestore.projectId"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "MATCHING_DAILYLIKELIMIT", want: "matching.dailyLikeLimit"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
