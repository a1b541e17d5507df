package utils

import (
	"time"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// Analyze composes the four sub-evaluations into one result. Pure over its
// inputs: the evaluation instant is an explicit parameter and nothing is
// mutated. Compatibility is only computed when a profile is active;
// recommendations always run and tolerate a nil profile.
func Analyze(p models.Product, profile *models.UserProfile, at time.Time) models.AnalysisResult {
	safety := EvaluateSafety(p, at)
	score := ComputeHealthScore(p)

	var compatibility *models.CompatibilityVerdict
	if profile != nil {
		v := EvaluateCompatibility(p, score, profile)
		compatibility = &v
	}

	return models.AnalysisResult{
		Safety:          safety,
		HealthScore:     score,
		Compatibility:   compatibility,
		Recommendations: GenerateRecommendations(p, score, profile),
	}
}
