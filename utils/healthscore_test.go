package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

func TestComputeHealthScorePerfect(t *testing.T) {
	hs := ComputeHealthScore(models.Product{Preservatives: models.PreservativesNone})
	assert.Equal(t, 100, hs.Score)
	assert.Equal(t, models.ColorGreen, hs.Color)
	assert.Equal(t, "Excellent! This is a very healthy choice.", hs.Description)
}

func TestComputeHealthScorePenaltyTiers(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
		want    int
	}{
		{"sugar top tier", models.Product{Sugar: 21}, 80},
		{"sugar second tier", models.Product{Sugar: 16}, 85},
		{"sugar third tier", models.Product{Sugar: 11}, 90},
		{"sugar fourth tier", models.Product{Sugar: 6}, 95},
		{"sugar boundary not crossed", models.Product{Sugar: 5}, 100},
		{"fat top tier", models.Product{Fat: 16}, 85},
		{"fat second tier", models.Product{Fat: 11}, 90},
		{"fat third tier", models.Product{Fat: 6}, 95},
		{"salt top tier", models.Product{Salt: 1.1}, 85},
		{"salt second tier", models.Product{Salt: 0.6}, 90},
		{"salt third tier", models.Product{Salt: 0.31}, 95},
		{"calories top tier", models.Product{Calories: 301}, 80},
		{"calories second tier", models.Product{Calories: 201}, 85},
		{"calories third tier", models.Product{Calories: 151}, 90},
		{"high preservatives", models.Product{Preservatives: models.PreservativesHigh}, 85},
		{"medium preservatives", models.Product{Preservatives: models.PreservativesMedium}, 92},
		{"low preservatives", models.Product{Preservatives: models.PreservativesLow}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeHealthScore(tc.product).Score)
		})
	}
}

func TestComputeHealthScorePenaltiesStack(t *testing.T) {
	// Soda-like record: sugar>20 (-20) and high preservatives (-15).
	hs := ComputeHealthScore(models.Product{
		Calories:      140,
		Sugar:         39,
		Fat:           0,
		Salt:          0.05,
		Preservatives: models.PreservativesHigh,
	})
	assert.Equal(t, 65, hs.Score)
	assert.Equal(t, models.ColorGreen, hs.Color)
}

func TestComputeHealthScoreClampsAtZero(t *testing.T) {
	hs := ComputeHealthScore(models.Product{
		Calories:      500,
		Sugar:         50,
		Fat:           30,
		Salt:          2,
		Preservatives: models.PreservativesHigh,
	})
	assert.Equal(t, 15, hs.Score)
	assert.GreaterOrEqual(t, hs.Score, 0)
	assert.LessOrEqual(t, hs.Score, 100)
	assert.Equal(t, models.ColorRed, hs.Color)
}

func TestComputeHealthScoreColorBands(t *testing.T) {
	// 100-15-20 = 65 -> green band.
	green := ComputeHealthScore(models.Product{Fat: 16, Calories: 301})
	assert.Equal(t, 65, green.Score)
	assert.Equal(t, models.ColorGreen, green.Color)

	// 100-20-15-20 = 45 -> yellow band.
	yellow := ComputeHealthScore(models.Product{Sugar: 21, Fat: 16, Calories: 301})
	assert.Equal(t, 45, yellow.Score)
	assert.Equal(t, models.ColorYellow, yellow.Color)
	assert.Equal(t, "Moderate health value. Consume in moderation.", yellow.Description)

	// 100-20-15-15-20 = 30 -> red band.
	red := ComputeHealthScore(models.Product{Sugar: 21, Fat: 16, Salt: 1.1, Calories: 301})
	assert.Equal(t, 30, red.Score)
	assert.Equal(t, models.ColorRed, red.Color)
}

func TestComputeHealthScoreMonotonicInEachNutrient(t *testing.T) {
	base := models.Product{Calories: 100, Sugar: 4, Fat: 4, Salt: 0.2, Preservatives: models.PreservativesNone}

	prev := ComputeHealthScore(base).Score
	for _, sugar := range []float64{6, 11, 16, 21} {
		p := base
		p.Sugar = sugar
		s := ComputeHealthScore(p).Score
		assert.LessOrEqual(t, s, prev)
		prev = s
	}

	prev = ComputeHealthScore(base).Score
	for _, fat := range []float64{6, 11, 16} {
		p := base
		p.Fat = fat
		s := ComputeHealthScore(p).Score
		assert.LessOrEqual(t, s, prev)
		prev = s
	}

	prev = ComputeHealthScore(base).Score
	for _, salt := range []float64{0.31, 0.6, 1.1} {
		p := base
		p.Salt = salt
		s := ComputeHealthScore(p).Score
		assert.LessOrEqual(t, s, prev)
		prev = s
	}

	prev = ComputeHealthScore(base).Score
	for _, calories := range []float64{151, 201, 301} {
		p := base
		p.Calories = calories
		s := ComputeHealthScore(p).Score
		assert.LessOrEqual(t, s, prev)
		prev = s
	}

	prev = ComputeHealthScore(base).Score
	for _, level := range []models.PreservativeLevel{models.PreservativesLow, models.PreservativesMedium, models.PreservativesHigh} {
		p := base
		p.Preservatives = level
		s := ComputeHealthScore(p).Score
		assert.LessOrEqual(t, s, prev)
		prev = s
	}
}

func TestComputeHealthScoreIgnoresCategory(t *testing.T) {
	a := models.Product{Sugar: 12, Category: models.CategoryHealthy}
	b := models.Product{Sugar: 12, Category: models.CategoryUnhealthy}
	assert.Equal(t, ComputeHealthScore(a), ComputeHealthScore(b))
}
