package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

func profileWithGoal(goal models.HealthGoal) *models.UserProfile {
	return &models.UserProfile{Name: "Sam", Age: 30, Weight: 70, HealthGoal: goal}
}

func TestCompatibilityWeightLoss(t *testing.T) {
	profile := profileWithGoal(models.GoalWeightLoss)
	hs := models.HealthScore{Score: 100}

	bad := EvaluateCompatibility(models.Product{Calories: 250}, hs, profile)
	assert.Equal(t, models.CompatibilityBad, bad.Tier)
	assert.Equal(t, "Not suitable for your health", bad.Title)

	assert.Equal(t, models.CompatibilityBad, EvaluateCompatibility(models.Product{Sugar: 16}, hs, profile).Tier)
	assert.Equal(t, models.CompatibilityBad, EvaluateCompatibility(models.Product{Fat: 11}, hs, profile).Tier)

	moderate := EvaluateCompatibility(models.Product{Calories: 180}, hs, profile)
	assert.Equal(t, models.CompatibilityModerate, moderate.Tier)
	assert.Equal(t, "Eat in moderation", moderate.Title)

	good := EvaluateCompatibility(models.Product{Calories: 120, Sugar: 5, Fat: 2}, hs, profile)
	assert.Equal(t, models.CompatibilityGood, good.Tier)
	assert.Equal(t, "Good for you", good.Title)
}

func TestCompatibilityWeightGain(t *testing.T) {
	profile := profileWithGoal(models.GoalWeightGain)
	hs := models.HealthScore{Score: 100}

	moderate := EvaluateCompatibility(models.Product{Calories: 80}, hs, profile)
	assert.Equal(t, models.CompatibilityModerate, moderate.Tier)

	dense := EvaluateCompatibility(models.Product{Calories: 200, Fat: 8}, hs, profile)
	assert.Equal(t, models.CompatibilityGood, dense.Tier)
	assert.Equal(t, "Good calorie and fat content for weight gain goals.", dense.Message)

	// Between the branches the default verdict stands.
	middling := EvaluateCompatibility(models.Product{Calories: 120, Fat: 2}, hs, profile)
	assert.Equal(t, models.CompatibilityGood, middling.Tier)
	assert.Equal(t, "This product is suitable for your health goal.", middling.Message)
}

func TestCompatibilityWeightGainNeverBad(t *testing.T) {
	profile := profileWithGoal(models.GoalWeightGain)
	hs := models.HealthScore{Score: 0}

	for _, calories := range []float64{0, 50, 99, 100, 149, 150, 500, 2000} {
		for _, fat := range []float64{0, 4, 5, 30, 100} {
			p := models.Product{Calories: calories, Fat: fat, Sugar: 100, Salt: 5}
			v := EvaluateCompatibility(p, hs, profile)
			assert.NotEqual(t, models.CompatibilityBad, v.Tier, "calories=%v fat=%v", calories, fat)
		}
	}
}

func TestCompatibilityDiabetic(t *testing.T) {
	profile := profileWithGoal(models.GoalDiabetic)
	hs := models.HealthScore{Score: 100}

	// Fresh juice with 21g sugar is over the line.
	bad := EvaluateCompatibility(models.Product{Calories: 110, Sugar: 21}, hs, profile)
	assert.Equal(t, models.CompatibilityBad, bad.Tier)
	assert.Equal(t, "High sugar content. Not recommended for diabetic diet.", bad.Message)

	assert.Equal(t, models.CompatibilityModerate, EvaluateCompatibility(models.Product{Sugar: 9}, hs, profile).Tier)
	assert.Equal(t, models.CompatibilityGood, EvaluateCompatibility(models.Product{Sugar: 8}, hs, profile).Tier)
}

func TestCompatibilityHeartHealthy(t *testing.T) {
	profile := profileWithGoal(models.GoalHeartHealthy)
	hs := models.HealthScore{Score: 100}

	assert.Equal(t, models.CompatibilityBad, EvaluateCompatibility(models.Product{Salt: 0.9}, hs, profile).Tier)
	assert.Equal(t, models.CompatibilityBad, EvaluateCompatibility(models.Product{Fat: 11}, hs, profile).Tier)
	assert.Equal(t, models.CompatibilityModerate, EvaluateCompatibility(models.Product{Salt: 0.6}, hs, profile).Tier)
	assert.Equal(t, models.CompatibilityModerate, EvaluateCompatibility(models.Product{Fat: 6}, hs, profile).Tier)
	assert.Equal(t, models.CompatibilityGood, EvaluateCompatibility(models.Product{Salt: 0.5, Fat: 5}, hs, profile).Tier)
}

func TestCompatibilityNormalReadsHealthScore(t *testing.T) {
	profile := profileWithGoal(models.GoalNormal)

	low := EvaluateCompatibility(models.Product{}, models.HealthScore{Score: 39}, profile)
	assert.Equal(t, models.CompatibilityModerate, low.Tier)

	ok := EvaluateCompatibility(models.Product{}, models.HealthScore{Score: 40}, profile)
	assert.Equal(t, models.CompatibilityGood, ok.Tier)
}

func TestCompatibilityUnknownGoalKeepsDefault(t *testing.T) {
	profile := profileWithGoal(models.HealthGoal("keto"))
	v := EvaluateCompatibility(models.Product{Calories: 900, Sugar: 90}, models.HealthScore{Score: 0}, profile)
	assert.Equal(t, models.CompatibilityGood, v.Tier)
	assert.Equal(t, "This product is suitable for your health goal.", v.Message)
}
