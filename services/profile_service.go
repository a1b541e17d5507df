package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// ErrProfileNotFound means no profile has been saved yet. A valid state, not
// a fault: analysis runs without one.
var ErrProfileNotFound = errors.New("profile not found")

// profileKey pins the singleton row; there is exactly one active profile.
const profileKey = "current"

// ProfileService owns the single active user profile.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Load returns the active profile or ErrProfileNotFound.
func (s *ProfileService) Load() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("profile_key = ?", profileKey).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &profile, nil
}

// Save replaces the active profile wholesale.
func (s *ProfileService) Save(profile *models.UserProfile) error {
	profile.ProfileKey = profileKey

	var existing models.UserProfile
	err := s.db.Where("profile_key = ?", profileKey).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(profile).Error; err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	case err != nil:
		return fmt.Errorf("save profile: %w", err)
	default:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := s.db.Save(profile).Error; err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}
	return nil
}
