package domain

// AchievementStat is one (game, player) achievement summary.
// Total >= Completed >= 0. A zero value means "no usable data" and is the
// degraded result for failed lookups.
type AchievementStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// CompletionRate returns Completed/Total, or 0 when the game defines no
// achievements.
func (s AchievementStat) CompletionRate() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}
