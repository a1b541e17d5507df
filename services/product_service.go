package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// ErrInvalidExpiry reports a catalog row whose expiry text cannot be parsed.
// Synthesized products never hit this; only externally supplied rows can.
var ErrInvalidExpiry = errors.New("invalid expiry date")

const expiryLayout = "2006-01-02"

// ParseExpiry normalizes a YYYY-MM-DD expiry string at the lookup boundary so
// the analysis engine only ever sees a real time.Time.
func ParseExpiry(s string) (time.Time, error) {
	t, err := time.Parse(expiryLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiry, s)
	}
	return t, nil
}

// ProductService resolves barcodes to fully populated products: known
// barcodes come from the catalog, unknown ones are synthesized. The random
// source and clock are injected so synthesis is deterministic under test.
type ProductService struct {
	db  *gorm.DB
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
	now func() time.Time
	log *logrus.Logger
}

func NewProductService(db *gorm.DB, rng *rand.Rand, now func() time.Time, log *logrus.Logger) *ProductService {
	return &ProductService{db: db, rng: rng, now: now, log: log}
}

// Lookup resolves a barcode to a product bound to a fresh scan session.
// Unknown barcodes never fail; they fall back to synthesis.
func (s *ProductService) Lookup(barcode string) (models.Product, error) {
	var product models.Product

	var row models.CatalogProduct
	err := s.db.Where("barcode = ?", barcode).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		product = s.synthesize(barcode)
		s.log.WithFields(logrus.Fields{
			"barcode":  barcode,
			"category": product.Category,
		}).Info("unknown barcode, synthesized product")
	case err != nil:
		return models.Product{}, fmt.Errorf("catalog lookup: %w", err)
	default:
		expiry, perr := ParseExpiry(row.ExpiryDate)
		if perr != nil {
			return models.Product{}, perr
		}
		product = models.Product{
			Name:          row.Name,
			Brand:         row.Brand,
			Ingredients:   row.Ingredients,
			ExpiryDate:    expiry,
			Calories:      row.Calories,
			Sugar:         row.Sugar,
			Fat:           row.Fat,
			Salt:          row.Salt,
			Preservatives: row.Preservatives,
			Category:      row.Category,
		}
	}

	product.Barcode = barcode
	product.ScanID = uuid.NewString()
	product.ScannedAt = s.now()
	return product, nil
}

// synthesize builds a pseudo-random product for an unknown barcode. Category
// is a coin flip; ranges and preservative level are fixed per category. Salt
// is rounded to two decimals here so the engine always compares numbers.
func (s *ProductService) synthesize(barcode string) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng.Intn(2) == 0 {
		return models.Product{
			Name:          "Natural Product " + lastN(barcode, 4),
			Brand:         "OrganicBrand",
			ExpiryDate:    s.now().AddDate(0, 10, 0),
			Ingredients:   "Natural ingredients, whole grains, fruits",
			Calories:      float64(s.rng.Intn(100) + 50),
			Sugar:         float64(s.rng.Intn(10) + 2),
			Fat:           float64(s.rng.Intn(5) + 1),
			Salt:          round2(s.rng.Float64()),
			Preservatives: models.PreservativesLow,
			Category:      models.CategoryHealthy,
		}
	}
	return models.Product{
		Name:          "Processed Snack " + lastN(barcode, 4),
		Brand:         "FastFood Co",
		ExpiryDate:    s.now().AddDate(0, 16, 0),
		Ingredients:   "Processed ingredients, artificial flavors, preservatives",
		Calories:      float64(s.rng.Intn(200) + 150),
		Sugar:         float64(s.rng.Intn(30) + 15),
		Fat:           float64(s.rng.Intn(15) + 5),
		Salt:          round2(s.rng.Float64() + 0.3),
		Preservatives: models.PreservativesHigh,
		Category:      models.CategoryUnhealthy,
	}
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
