package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ISHOWOP9283/food-safety-diet-app/config"
	"github.com/ISHOWOP9283/food-safety-diet-app/routes"
	"github.com/ISHOWOP9283/food-safety-diet-app/services"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	db, err := config.InitDB(log)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if err := services.SeedCatalog(db); err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}

	r := routes.SetupRouter(db, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
