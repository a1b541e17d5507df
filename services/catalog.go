package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// Built-in test catalog; the same four barcodes the scanner demo uses.
var seedCatalog = []models.CatalogProduct{
	{
		Barcode:       "123456789012",
		Name:          "Whole Grain Healthy Cereal",
		Brand:         "NutriLife",
		ExpiryDate:    "2025-12-31",
		Ingredients:   "Whole wheat, oats, honey, dried fruits, nuts, natural preservatives",
		Calories:      150,
		Sugar:         8,
		Fat:           3,
		Salt:          0.3,
		Preservatives: models.PreservativesLow,
		Category:      models.CategoryHealthy,
	},
	{
		Barcode:       "234567890123",
		Name:          "Super Sweet Soda",
		Brand:         "FizzCo",
		ExpiryDate:    "2024-06-15",
		Ingredients:   "Carbonated water, high fructose corn syrup, artificial flavors, colors, preservatives",
		Calories:      140,
		Sugar:         39,
		Fat:           0,
		Salt:          0.05,
		Preservatives: models.PreservativesHigh,
		Category:      models.CategoryUnhealthy,
	},
	{
		Barcode:       "345678901234",
		Name:          "Crispy Potato Chips",
		Brand:         "SnackMaster",
		ExpiryDate:    "2025-03-20",
		Ingredients:   "Potatoes, vegetable oil, salt, artificial flavors, preservatives",
		Calories:      160,
		Sugar:         0,
		Fat:           10,
		Salt:          0.5,
		Preservatives: models.PreservativesMedium,
		Category:      models.CategoryUnhealthy,
	},
	{
		Barcode:       "456789012345",
		Name:          "Fresh Orange Juice",
		Brand:         "NatureFresh",
		ExpiryDate:    "2024-02-10",
		Ingredients:   "100% fresh oranges, vitamin C added",
		Calories:      110,
		Sugar:         21,
		Fat:           0,
		Salt:          0,
		Preservatives: models.PreservativesNone,
		Category:      models.CategoryHealthy,
	},
}

// SeedCatalog inserts the built-in products, skipping barcodes already
// present. Safe to call on every startup.
func SeedCatalog(db *gorm.DB) error {
	for _, item := range seedCatalog {
		var existing models.CatalogProduct
		err := db.Where("barcode = ?", item.Barcode).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("seed catalog %s: %w", item.Barcode, err)
		}
	}
	return nil
}
