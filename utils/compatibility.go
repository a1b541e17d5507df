package utils

import (
	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

func verdict(tier models.CompatibilityTier, message, icon string) models.CompatibilityVerdict {
	return models.CompatibilityVerdict{
		Tier:    tier,
		Title:   tier.Title(),
		Message: message,
		Icon:    icon,
	}
}

// EvaluateCompatibility grades the product against the profile's health goal.
// A pure decision table: each goal has its own thresholds, there is no
// fallthrough across goals, and an unknown goal keeps the default verdict.
// The health score must already be computed; only the normal-diet branch
// reads it.
func EvaluateCompatibility(p models.Product, hs models.HealthScore, profile *models.UserProfile) models.CompatibilityVerdict {
	out := verdict(models.CompatibilityGood, "This product is suitable for your health goal.", "✅")
	if profile == nil {
		return out
	}

	switch profile.HealthGoal {
	case models.GoalWeightLoss:
		if p.Calories > 200 || p.Sugar > 15 || p.Fat > 10 {
			out = verdict(models.CompatibilityBad, "High in calories, sugar, or fat. Not ideal for weight loss goals.", "❌")
		} else if p.Calories > 150 {
			out = verdict(models.CompatibilityModerate, "Moderate calorie content. Good for weight loss in controlled portions.", "⚠️")
		}

	case models.GoalWeightGain:
		// No bad tier for this goal; anything calorie-dense enough stays good.
		if p.Calories < 100 {
			out = verdict(models.CompatibilityModerate, "Lower calorie content. You may need additional foods for weight gain.", "⚠️")
		} else if p.Calories >= 150 && p.Fat >= 5 {
			out = verdict(models.CompatibilityGood, "Good calorie and fat content for weight gain goals.", "✅")
		}

	case models.GoalDiabetic:
		if p.Sugar > 15 {
			out = verdict(models.CompatibilityBad, "High sugar content. Not recommended for diabetic diet.", "❌")
		} else if p.Sugar > 8 {
			out = verdict(models.CompatibilityModerate, "Moderate sugar content. Monitor blood sugar levels if consumed.", "⚠️")
		}

	case models.GoalHeartHealthy:
		if p.Salt > 0.8 || p.Fat > 10 {
			out = verdict(models.CompatibilityBad, "High in sodium or fat. Not heart-healthy.", "❌")
		} else if p.Salt > 0.5 || p.Fat > 5 {
			out = verdict(models.CompatibilityModerate, "Moderate sodium or fat content. Limit consumption.", "⚠️")
		}

	case models.GoalNormal:
		if hs.Score < 40 {
			out = verdict(models.CompatibilityModerate, "Low health score. Enjoy occasionally as part of balanced diet.", "⚠️")
		}
	}

	return out
}
