package impact

import (
	"clubraise/internal/domain"
)

// Reputation score component caps. Financial points are 40 per evidence kind
// (receipts, invoices), assessed club-wide rather than per record.
const (
	mediaPointsEach      = 15
	mediaCountCap        = 4
	metricsPointsEach    = 20
	metricsCountCap      = 4
	financialPointsEach  = 40
	testimonialPointsEach = 10
	testimonialCountCap  = 5

	// MaxScore is the theoretical maximum: 60 + 80 + 80 + 50.
	MaxScore = mediaCountCap*mediaPointsEach +
		metricsCountCap*metricsPointsEach +
		2*financialPointsEach +
		testimonialCountCap*testimonialPointsEach
)

// Rating bands for display. A score of 80 or more is treated as the meaningful
// minimum.
const (
	RatingExceptional = "Exceptional"
	RatingExcellent   = "Excellent"
	RatingGreat       = "Great"
	RatingGood        = "Good"
	RatingDeveloping  = "Developing"
)

// CalculateAggregateScore computes a club's reputation score from its impact
// updates. Drafts and flagged records are excluded; the result depends only on
// the published and verified records, independent of input order.
func CalculateAggregateScore(updates []domain.ImpactUpdate) domain.ReputationScore {
	var (
		totalMedia        int
		totalTestimonials int
		totalMetrics      int
		hasReceipt        bool
		hasInvoice        bool
	)

	for i := range updates {
		u := &updates[i]
		if !u.CountsTowardScore() {
			continue
		}
		totalMedia += len(u.Proof.Media)
		totalTestimonials += len(u.Proof.Testimonials)
		totalMetrics += u.Metrics.CountWithValue()
		if len(u.Proof.Receipts) > 0 {
			hasReceipt = true
		}
		if len(u.Proof.Invoices) > 0 {
			hasInvoice = true
		}
	}

	breakdown := domain.ScoreBreakdown{
		MediaPoints:       capped(totalMedia, mediaCountCap) * mediaPointsEach,
		MetricsPoints:     capped(totalMetrics, metricsCountCap) * metricsPointsEach,
		TestimonialPoints: capped(totalTestimonials, testimonialCountCap) * testimonialPointsEach,
	}
	if hasReceipt {
		breakdown.FinancialPoints += financialPointsEach
	}
	if hasInvoice {
		breakdown.FinancialPoints += financialPointsEach
	}

	score := breakdown.MediaPoints + breakdown.MetricsPoints +
		breakdown.FinancialPoints + breakdown.TestimonialPoints

	return domain.ReputationScore{
		Score:     score,
		Breakdown: breakdown,
		Rating:    RatingFor(score),
	}
}

// RatingFor maps a score to its display band.
func RatingFor(score int) string {
	switch {
	case score >= 200:
		return RatingExceptional
	case score >= 150:
		return RatingExcellent
	case score >= 100:
		return RatingGreat
	case score >= 80:
		return RatingGood
	default:
		return RatingDeveloping
	}
}

func capped(n, cap int) int {
	if n > cap {
		return cap
	}
	return n
}
