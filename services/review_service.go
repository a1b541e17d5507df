package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// ReviewService keeps the append-only review list. Reviews are never edited
// or deleted; listing is newest-first.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Append stores a new review. Missing safety mark defaults to none, missing
// author to Anonymous.
func (s *ReviewService) Append(review *models.Review) error {
	if review.SafetyMark == "" {
		review.SafetyMark = models.MarkNone
	}
	if review.UserName == "" {
		review.UserName = "Anonymous"
	}
	if err := s.db.Create(review).Error; err != nil {
		return fmt.Errorf("append review: %w", err)
	}
	return nil
}

// ListByBarcode returns the reviews for one product, newest first. An empty
// slice, not an error, when there are none.
func (s *ReviewService) ListByBarcode(barcode string) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.db.
		Where("barcode = ?", barcode).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
