package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
	"github.com/ISHOWOP9283/food-safety-diet-app/services"
)

type ReviewController struct {
	reviews  *services.ReviewService
	profiles *services.ProfileService
}

func NewReviewController(reviews *services.ReviewService, profiles *services.ProfileService) *ReviewController {
	return &ReviewController{reviews: reviews, profiles: profiles}
}

type reviewRequest struct {
	Barcode     string `json:"barcode" binding:"required"`
	ProductName string `json:"productName"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Text        string `json:"text"`
	SafetyMark  string `json:"safetyMark" binding:"omitempty,oneof=safe unsafe none"`
}

// POST /api/reviews
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review: " + err.Error()})
		return
	}

	// Author comes from the active profile when one exists.
	userName := ""
	profile, err := rc.profiles.Load()
	if err != nil && !errors.Is(err, services.ErrProfileNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile != nil {
		userName = profile.Name
	}

	review := models.Review{
		Barcode:     strings.TrimSpace(req.Barcode),
		ProductName: req.ProductName,
		Rating:      req.Rating,
		Text:        strings.TrimSpace(req.Text),
		SafetyMark:  models.SafetyMark(req.SafetyMark),
		UserName:    userName,
	}
	if err := rc.reviews.Append(&review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GET /api/reviews/:barcode — newest first; empty list when none.
func (rc *ReviewController) ListReviews(c *gin.Context) {
	barcode := strings.TrimSpace(c.Param("barcode"))
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}

	reviews, err := rc.reviews.ListByBarcode(barcode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
