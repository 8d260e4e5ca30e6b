package model

// CompatibilityResult is the Ashta Kuta scoring output for two charts.
// All eight kuta names are always present in PerKutaScores.
type CompatibilityResult struct {
	ProfileAID     string             `json:"profile_a_id"`
	ProfileBID     string             `json:"profile_b_id"`
	TotalScore36   float64            `json:"total_score_36"` // 0-36, rounded to 2 decimals
	PerKutaScores  map[string]float64 `json:"per_kuta_scores"`
	TextualSummary string             `json:"textual_summary"`
}
