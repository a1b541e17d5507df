package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/ISHOWOP9283/food-safety-diet-app/models"
)

// DaysUntilExpiry counts whole days between the evaluation instant and the
// expiry date, flooring the fractional part. A product whose expiry instant
// is already behind the evaluation instant yields a negative count, even
// when both fall on the same calendar day.
func DaysUntilExpiry(expiry, at time.Time) int {
	return int(math.Floor(expiry.Sub(at).Hours() / 24))
}

// FormatDate renders a date the way verdict messages show it.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// EvaluateSafety derives the safety verdict from expiry and preservative
// level. Rules are checked in fixed priority order; the first match wins.
func EvaluateSafety(p models.Product, at time.Time) models.SafetyVerdict {
	days := DaysUntilExpiry(p.ExpiryDate, at)

	switch {
	case days < 0:
		return models.SafetyVerdict{
			Status:  models.SafetyUnsafe,
			Label:   "🔴 Unsafe",
			Message: fmt.Sprintf("⚠️ This product expired on %s. It is not safe to consume expired products. Please discard it immediately.", FormatDate(p.ExpiryDate)),
			Icon:    "🔴",
		}
	case days < 7:
		return models.SafetyVerdict{
			Status:  models.SafetyRisky,
			Label:   "🟡 Risky",
			Message: fmt.Sprintf("⚠️ This product expires in %d day(s). Consume it soon or check for any signs of spoilage before use.", days),
			Icon:    "🟡",
		}
	case p.Preservatives == models.PreservativesHigh:
		return models.SafetyVerdict{
			Status:  models.SafetyRisky,
			Label:   "🟡 Risky",
			Message: "⚠️ This product contains high levels of preservatives. While it's within expiry, consider limiting consumption of heavily processed foods.",
			Icon:    "🟡",
		}
	default:
		return models.SafetyVerdict{
			Status:  models.SafetySafe,
			Label:   "🟢 Safe",
			Message: fmt.Sprintf("✅ This product is fresh and within its expiry date. It can be consumed safely. Expires on %s.", FormatDate(p.ExpiryDate)),
			Icon:    "🟢",
		}
	}
}
