package utils

import (
	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// GenerateRecommendations runs the independent trigger checks in fixed order.
// Every matching trigger fires; the output keeps check order and an empty
// list is a valid result.
func GenerateRecommendations(p models.Product, hs models.HealthScore, profile *models.UserProfile) []models.Recommendation {
	recs := []models.Recommendation{}

	if p.Sugar > 20 {
		recs = append(recs, models.Recommendation{
			Icon:    "🍎",
			Title:   "High Sugar Detected",
			Message: "Try fresh fruits, unsweetened yogurt, or naturally sweet alternatives instead.",
		})
	}

	if p.Fat > 10 {
		recs = append(recs, models.Recommendation{
			Icon:    "🥗",
			Title:   "High Fat Content",
			Message: "Consider grilled, baked, or steamed options. Choose lean proteins and vegetables.",
		})
	}

	if p.Salt > 0.8 {
		recs = append(recs, models.Recommendation{
			Icon:    "🧂",
			Title:   "High Sodium",
			Message: "Try herbs and spices for flavor. Choose low-sodium alternatives when possible.",
		})
	}

	if p.Preservatives == models.PreservativesHigh {
		recs = append(recs, models.Recommendation{
			Icon:    "🌿",
			Title:   "Many Preservatives",
			Message: "Look for organic or minimally processed alternatives with fewer additives.",
		})
	}

	if hs.Score < 50 && profile != nil && profile.HealthGoal == models.GoalWeightLoss {
		recs = append(recs, models.Recommendation{
			Icon:    "🥣",
			Title:   "Weight Loss Alternative",
			Message: "Try oatmeal with fruits, vegetable smoothies, or whole grain snacks.",
		})
	}

	if hs.Score >= 80 {
		recs = append(recs, models.Recommendation{
			Icon:    "⭐",
			Title:   "Great Choice!",
			Message: "This is a nutritious option! Continue making healthy food choices.",
		})
	}

	return recs
}
