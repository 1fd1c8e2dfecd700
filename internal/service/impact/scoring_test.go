package impact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubraise/internal/domain"
	"clubraise/internal/service/impact"
)

func publishedUpdate(proof domain.ProofBundle, metrics domain.Metrics) domain.ImpactUpdate {
	return domain.ImpactUpdate{
		Status:  domain.ImpactPublished,
		Proof:   proof,
		Metrics: metrics,
	}
}

func mediaItems(n int) []domain.MediaItem {
	items := make([]domain.MediaItem, n)
	for i := range items {
		items[i] = domain.MediaItem{Type: domain.MediaImage, URL: "https://cdn.example.com/photo.jpg"}
	}
	return items
}

func testimonials(n int) []domain.Testimonial {
	items := make([]domain.Testimonial, n)
	for i := range items {
		items[i] = domain.Testimonial{Text: "Changed our season", Attribution: "A parent"}
	}
	return items
}

func TestCalculateAggregateScore(t *testing.T) {
	t.Run("No Updates", func(t *testing.T) {
		score := impact.CalculateAggregateScore(nil)

		assert.Equal(t, 0, score.Score)
		assert.Equal(t, impact.RatingDeveloping, score.Rating)
	})

	t.Run("Drafts And Flagged Do Not Count", func(t *testing.T) {
		updates := []domain.ImpactUpdate{
			{
				Status:  domain.ImpactDraft,
				Proof:   domain.ProofBundle{Media: mediaItems(4), Receipts: []string{"r1"}},
				Metrics: domain.Metrics{{Name: "attendees", Value: 40}},
			},
			{
				Status:  domain.ImpactFlagged,
				Proof:   domain.ProofBundle{Media: mediaItems(2), Testimonials: testimonials(3)},
				Metrics: domain.Metrics{{Name: "sessions", Value: 6}},
			},
		}

		score := impact.CalculateAggregateScore(updates)

		assert.Equal(t, 0, score.Score)
		assert.Equal(t, impact.RatingDeveloping, score.Rating)
	})

	t.Run("Media And Metrics Only", func(t *testing.T) {
		updates := []domain.ImpactUpdate{
			publishedUpdate(
				domain.ProofBundle{Media: mediaItems(5)},
				domain.Metrics{
					{Name: "attendees", Value: 120, Unit: "people"},
					{Name: "sessions", Value: 8},
					{Name: "volunteers", Value: 0},
				},
			),
		}

		score := impact.CalculateAggregateScore(updates)

		assert.Equal(t, 60, score.Breakdown.MediaPoints)
		assert.Equal(t, 40, score.Breakdown.MetricsPoints)
		assert.Equal(t, 0, score.Breakdown.FinancialPoints)
		assert.Equal(t, 0, score.Breakdown.TestimonialPoints)
		assert.Equal(t, 100, score.Score)
		assert.Equal(t, impact.RatingGreat, score.Rating)
	})

	t.Run("Financial Points Are Club Wide", func(t *testing.T) {
		updates := []domain.ImpactUpdate{
			publishedUpdate(domain.ProofBundle{Media: mediaItems(1), Receipts: []string{"r1", "r2"}}, domain.Metrics{{Name: "kits", Value: 20}}),
			publishedUpdate(domain.ProofBundle{Media: mediaItems(1), Receipts: []string{"r3"}}, nil),
		}

		score := impact.CalculateAggregateScore(updates)
		assert.Equal(t, 40, score.Breakdown.FinancialPoints)

		updates[1].Proof.Invoices = []string{"i1"}
		score = impact.CalculateAggregateScore(updates)
		assert.Equal(t, 80, score.Breakdown.FinancialPoints)
	})

	t.Run("Component Caps", func(t *testing.T) {
		updates := []domain.ImpactUpdate{
			publishedUpdate(
				domain.ProofBundle{
					Media:        mediaItems(10),
					Testimonials: testimonials(9),
				},
				domain.Metrics{
					{Name: "a", Value: 1},
					{Name: "b", Value: 2},
					{Name: "c", Value: 3},
					{Name: "d", Value: 4},
					{Name: "e", Value: 5},
					{Name: "f", Value: 6},
				},
			),
		}

		score := impact.CalculateAggregateScore(updates)

		assert.Equal(t, 60, score.Breakdown.MediaPoints)
		assert.Equal(t, 80, score.Breakdown.MetricsPoints)
		assert.Equal(t, 50, score.Breakdown.TestimonialPoints)
	})

	t.Run("Maximum Score", func(t *testing.T) {
		updates := []domain.ImpactUpdate{
			publishedUpdate(
				domain.ProofBundle{
					Media:        mediaItems(4),
					Receipts:     []string{"r1"},
					Invoices:     []string{"i1"},
					Testimonials: testimonials(5),
				},
				domain.Metrics{
					{Name: "a", Value: 1},
					{Name: "b", Value: 2},
					{Name: "c", Value: 3},
					{Name: "d", Value: 4},
				},
			),
		}

		score := impact.CalculateAggregateScore(updates)

		assert.Equal(t, impact.MaxScore, score.Score)
		assert.Equal(t, 270, score.Score)
		assert.Equal(t, impact.RatingExceptional, score.Rating)
	})

	t.Run("Order Independent", func(t *testing.T) {
		a := publishedUpdate(domain.ProofBundle{Media: mediaItems(3), Receipts: []string{"r1"}}, domain.Metrics{{Name: "attendees", Value: 50}})
		b := publishedUpdate(domain.ProofBundle{Media: mediaItems(2), Testimonials: testimonials(2)}, domain.Metrics{{Name: "sessions", Value: 4}})
		c := publishedUpdate(domain.ProofBundle{Invoices: []string{"i1"}}, nil)

		forward := impact.CalculateAggregateScore([]domain.ImpactUpdate{a, b, c})
		reversed := impact.CalculateAggregateScore([]domain.ImpactUpdate{c, b, a})

		assert.Equal(t, forward, reversed)
	})

	t.Run("Verified Counts Like Published", func(t *testing.T) {
		verified := publishedUpdate(domain.ProofBundle{Media: mediaItems(2)}, domain.Metrics{{Name: "attendees", Value: 30}})
		verified.Status = domain.ImpactVerified

		score := impact.CalculateAggregateScore([]domain.ImpactUpdate{verified})

		assert.Equal(t, 30, score.Breakdown.MediaPoints)
		assert.Equal(t, 20, score.Breakdown.MetricsPoints)
	})
}

func TestRatingFor(t *testing.T) {
	cases := []struct {
		score  int
		rating string
	}{
		{0, impact.RatingDeveloping},
		{79, impact.RatingDeveloping},
		{80, impact.RatingGood},
		{99, impact.RatingGood},
		{100, impact.RatingGreat},
		{149, impact.RatingGreat},
		{150, impact.RatingExcellent},
		{199, impact.RatingExcellent},
		{200, impact.RatingExceptional},
		{270, impact.RatingExceptional},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.rating, impact.RatingFor(tc.score), "score %d", tc.score)
	}
}
