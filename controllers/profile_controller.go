package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
	"github.com/ISHOWOP9283/food-safety-diet-app/services"
)

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

type profileRequest struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required,gt=0"`
	Weight     int    `json:"weight" binding:"required,gt=0"`
	HealthGoal string `json:"healthGoal" binding:"required,oneof=weight-loss weight-gain diabetic heart-healthy normal"`
}

// GET /api/profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.profiles.Load()
	if errors.Is(err, services.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":   profile,
		"goalLabel": profile.HealthGoal.Label(),
	})
}

// PUT /api/profile — replaces the profile wholesale.
func (pc *ProfileController) SaveProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile: " + err.Error()})
		return
	}

	profile := models.UserProfile{
		Name:       req.Name,
		Age:        req.Age,
		Weight:     req.Weight,
		HealthGoal: models.HealthGoal(req.HealthGoal),
	}
	if err := pc.profiles.Save(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":   profile,
		"goalLabel": profile.HealthGoal.Label(),
	})
}
