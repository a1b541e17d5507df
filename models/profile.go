package models

import (
	"gorm.io/gorm"
)

// HealthGoal is the user-selected dietary objective driving compatibility checks.
type HealthGoal string

const (
	GoalWeightLoss   HealthGoal = "weight-loss"
	GoalWeightGain   HealthGoal = "weight-gain"
	GoalDiabetic     HealthGoal = "diabetic"
	GoalHeartHealthy HealthGoal = "heart-healthy"
	GoalNormal       HealthGoal = "normal"
)

func (g HealthGoal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalWeightGain, GoalDiabetic, GoalHeartHealthy, GoalNormal:
		return true
	}
	return false
}

// Label returns the display name shown next to the goal.
func (g HealthGoal) Label() string {
	switch g {
	case GoalWeightLoss:
		return "Weight Loss"
	case GoalWeightGain:
		return "Weight Gain"
	case GoalDiabetic:
		return "Diabetic Friendly"
	case GoalHeartHealthy:
		return "Heart Healthy"
	case GoalNormal:
		return "Normal Diet"
	}
	return string(g)
}

// UserProfile is the single active dietary profile. There is at most one row;
// saving replaces it wholesale. ProfileKey pins the singleton.
type UserProfile struct {
	gorm.Model `json:"-"`
	ProfileKey string     `gorm:"type:varchar(16);uniqueIndex;not null" json:"-"`
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Weight     int        `json:"weight"` // kg
	HealthGoal HealthGoal `gorm:"type:varchar(16)" json:"healthGoal"`
}
