package domain

// FeatureVector is a fixed-length numeric encoding of a game's attributes.
// Every vector in the catalog has the same length.
type FeatureVector = []float64

// Library maps an owned app id to cumulative playtime in minutes.
// Request-scoped; built from the ownership provider per request.
type Library map[uint64]int64

// RankedPick is one explicitly selected game for users without a library.
// Rank starts at 1; a lower rank means a stronger preference.
type RankedPick struct {
	AppID uint64 `json:"app_id"`
	Rank  int    `json:"rank"`
}

// ScoredGame pairs an app id with its similarity to the user profile.
type ScoredGame struct {
	AppID      uint64  `json:"app_id"`
	Similarity float64 `json:"similarity"`
}

// Recommendation is the decorated ranking entry returned by the API.
type Recommendation struct {
	AppID      uint64  `json:"app_id"`
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
	StoreLink  string  `json:"store_link"`
}

// PlayerSummary is the resolved identity and library of one player.
type PlayerSummary struct {
	SteamID string  `json:"steam_id"`
	Games   Library `json:"games"`
}

// GameSummary is the catalog listing entry (id + display name only).
type GameSummary struct {
	AppID uint64 `json:"id"`
	Name  string `json:"name"`
}
