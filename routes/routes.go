package routes

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ISHOWOP9283/food-safety-diet-app/controllers"
	"github.com/ISHOWOP9283/food-safety-diet-app/middlewares"
	"github.com/ISHOWOP9283/food-safety-diet-app/services"
)

// SetupRouter wires services and controllers onto a gin engine.
func SetupRouter(db *gorm.DB, log *logrus.Logger) *gin.Engine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now

	productSvc := services.NewProductService(db, rng, now, log)
	profileSvc := services.NewProfileService(db)
	reviewSvc := services.NewReviewService(db)

	scanCtrl := controllers.NewScanController(productSvc, profileSvc, now)
	profileCtrl := controllers.NewProfileController(profileSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc, profileSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/scan", scanCtrl.Scan)
		api.GET("/products/:barcode", scanCtrl.GetProduct)

		api.GET("/profile", profileCtrl.GetProfile)
		api.PUT("/profile", profileCtrl.SaveProfile)

		api.POST("/reviews", reviewCtrl.SubmitReview)
		api.GET("/reviews/:barcode", reviewCtrl.ListReviews)
	}

	return r
}
