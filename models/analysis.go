package models

// SafetyStatus classifies consumption risk from expiry and preservatives.
type SafetyStatus string

const (
	SafetyUnsafe SafetyStatus = "unsafe"
	SafetyRisky  SafetyStatus = "risky"
	SafetySafe   SafetyStatus = "safe"
)

// SafetyVerdict is a structured safety finding you can show in an API / UI.
type SafetyVerdict struct {
	Status  SafetyStatus `json:"status"`
	Label   string       `json:"label"`
	Message string       `json:"message"`
	Icon    string       `json:"icon"`
}

// ScoreColor is the meter color band for a health score.
type ScoreColor string

const (
	ColorGreen  ScoreColor = "green"
	ColorYellow ScoreColor = "yellow"
	ColorRed    ScoreColor = "red"
)

// HealthScore is the 0–100 penalty-based nutritional quality metric.
type HealthScore struct {
	Score       int        `json:"score"`
	Description string     `json:"description"`
	Color       ScoreColor `json:"color"`
}

// CompatibilityTier grades a product against the user's health goal.
type CompatibilityTier string

const (
	CompatibilityGood     CompatibilityTier = "good"
	CompatibilityModerate CompatibilityTier = "moderate"
	CompatibilityBad      CompatibilityTier = "bad"
)

// Title returns the headline shown with the tier.
func (t CompatibilityTier) Title() string {
	switch t {
	case CompatibilityGood:
		return "Good for you"
	case CompatibilityModerate:
		return "Eat in moderation"
	case CompatibilityBad:
		return "Not suitable for your health"
	}
	return string(t)
}

// CompatibilityVerdict grades the product against the active health goal.
type CompatibilityVerdict struct {
	Tier    CompatibilityTier `json:"compatibility"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Icon    string            `json:"icon"`
}

// Recommendation is one actionable suggestion; order reflects trigger order.
type Recommendation struct {
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// AnalysisResult bundles the four sub-evaluations of one product analysis.
// Compatibility is nil when no profile is active.
type AnalysisResult struct {
	Safety          SafetyVerdict         `json:"safety"`
	HealthScore     HealthScore           `json:"healthScore"`
	Compatibility   *CompatibilityVerdict `json:"compatibility,omitempty"`
	Recommendations []Recommendation      `json:"recommendations"`
}
