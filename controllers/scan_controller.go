package controllers

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ISHOWOP9283/food-safety-diet-app/services"
	"github.com/ISHOWOP9283/food-safety-diet-app/utils"
)

// ScanController resolves a barcode and runs the analysis pipeline over the
// result. A cooperative single-flight gate rejects overlapping scans; there
// is never more than one lookup in flight.
type ScanController struct {
	products *services.ProductService
	profiles *services.ProfileService
	now      func() time.Time

	gate sync.Mutex
}

func NewScanController(products *services.ProductService, profiles *services.ProfileService, now func() time.Time) *ScanController {
	return &ScanController{products: products, profiles: profiles, now: now}
}

type scanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// POST /api/scan  { "barcode": "234567890123" }
func (sc *ScanController) Scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}

	if !sc.gate.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "a scan is already in progress"})
		return
	}
	defer sc.gate.Unlock()

	product, err := sc.products.Lookup(barcode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profile, err := sc.profiles.Load()
	if err != nil && !errors.Is(err, services.ErrProfileNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	analysis := utils.Analyze(product, profile, sc.now())

	c.JSON(http.StatusOK, gin.H{
		"product":  product,
		"analysis": analysis,
	})
}

// GET /api/products/:barcode — lookup without analysis. Shares the
// single-flight gate with Scan: only one lookup is ever dispatched at a time.
func (sc *ScanController) GetProduct(c *gin.Context) {
	barcode := strings.TrimSpace(c.Param("barcode"))
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}

	if !sc.gate.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "a scan is already in progress"})
		return
	}
	defer sc.gate.Unlock()

	product, err := sc.products.Lookup(barcode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}
