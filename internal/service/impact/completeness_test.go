package impact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubraise/internal/domain"
	"clubraise/internal/service/impact"
)

func TestProofCompleteness(t *testing.T) {
	t.Run("Empty Set", func(t *testing.T) {
		assert.Equal(t, 0, impact.ProofCompleteness(nil))
		assert.Equal(t, 0, impact.ProofCompleteness([]domain.ImpactUpdate{}))
	})

	t.Run("No Proof At All", func(t *testing.T) {
		updates := []domain.ImpactUpdate{
			{Title: "Bare update"},
			{Title: "Another bare update"},
		}

		assert.Equal(t, 0, impact.ProofCompleteness(updates))
	})

	t.Run("All Obligations Met", func(t *testing.T) {
		amount := 120.0
		updates := []domain.ImpactUpdate{
			{
				AmountSpent: &amount,
				Proof: domain.ProofBundle{
					Media:    mediaItems(2),
					Receipts: []string{"r1"},
				},
			},
			{
				Proof: domain.ProofBundle{
					Media:        mediaItems(1),
					Testimonials: testimonials(1),
				},
			},
		}

		// Obligations: media x2, financial x1, testimonial x1. All met.
		assert.Equal(t, 100, impact.ProofCompleteness(updates))
	})

	t.Run("Media Only No Spend", func(t *testing.T) {
		updates := []domain.ImpactUpdate{
			{Proof: domain.ProofBundle{Media: mediaItems(1)}},
		}

		// Media met, set-level testimonial missing: 1 of 2.
		assert.Equal(t, 50, impact.ProofCompleteness(updates))
	})

	t.Run("Unbacked Spend Lowers Score", func(t *testing.T) {
		amount := 75.0
		updates := []domain.ImpactUpdate{
			{
				AmountSpent: &amount,
				Proof:       domain.ProofBundle{Media: mediaItems(1)},
			},
		}

		// Media met; financial and testimonial missing: 1 of 3.
		assert.Equal(t, 33, impact.ProofCompleteness(updates))

		updates[0].Proof.Invoices = []string{"i1"}
		assert.Equal(t, 66, impact.ProofCompleteness(updates))
	})

	t.Run("Zero Spend Owes No Financial Proof", func(t *testing.T) {
		amount := 0.0
		updates := []domain.ImpactUpdate{
			{
				AmountSpent: &amount,
				Proof: domain.ProofBundle{
					Media:        mediaItems(1),
					Testimonials: testimonials(1),
				},
			},
		}

		assert.Equal(t, 100, impact.ProofCompleteness(updates))
	})
}
