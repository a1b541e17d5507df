package utils

import (
	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// ComputeHealthScore scores a product 0–100 by subtracting independent
// penalties per nutrient. Within one nutrient only the highest matching tier
// deducts; across nutrients penalties stack.
func ComputeHealthScore(p models.Product) models.HealthScore {
	score := 100

	// Sugar (ideal: <10g per serving)
	switch {
	case p.Sugar > 20:
		score -= 20
	case p.Sugar > 15:
		score -= 15
	case p.Sugar > 10:
		score -= 10
	case p.Sugar > 5:
		score -= 5
	}

	// Fat (ideal: <5g per serving)
	switch {
	case p.Fat > 15:
		score -= 15
	case p.Fat > 10:
		score -= 10
	case p.Fat > 5:
		score -= 5
	}

	// Salt (ideal: <0.5g per serving)
	switch {
	case p.Salt > 1.0:
		score -= 15
	case p.Salt > 0.5:
		score -= 10
	case p.Salt > 0.3:
		score -= 5
	}

	// Calories (ideal: <150 per serving)
	switch {
	case p.Calories > 300:
		score -= 20
	case p.Calories > 200:
		score -= 15
	case p.Calories > 150:
		score -= 10
	}

	switch p.Preservatives {
	case models.PreservativesHigh:
		score -= 15
	case models.PreservativesMedium:
		score -= 8
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	var description string
	switch {
	case score >= 80:
		description = "Excellent! This is a very healthy choice."
	case score >= 60:
		description = "Good choice with some considerations."
	case score >= 40:
		description = "Moderate health value. Consume in moderation."
	default:
		description = "Low health value. Consider healthier alternatives."
	}

	color := models.ColorRed
	switch {
	case score >= 60:
		color = models.ColorGreen
	case score >= 40:
		color = models.ColorYellow
	}

	return models.HealthScore{Score: score, Description: description, Color: color}
}
