package impact

import (
	"clubraise/internal/domain"
)

// ProofCompleteness scores how much of the encouraged evidence a set of impact
// updates (all records for one event or campaign) actually carries, as an
// integer percentage.
//
// Each record owes a media obligation, plus a financial-proof obligation when
// money was spent. The set as a whole owes one testimonial obligation. The
// percentage is the share of obligations met: 0 when no record carries any
// proof, 100 only when every record has media, every spend is backed by a
// receipt or invoice, and at least one testimonial exists across the set.
func ProofCompleteness(updates []domain.ImpactUpdate) int {
	if len(updates) == 0 {
		return 0
	}

	var obligations, satisfied int
	hasTestimonial := false

	for i := range updates {
		u := &updates[i]

		obligations++
		if len(u.Proof.Media) > 0 {
			satisfied++
		}

		if u.SpentAmount() > 0 {
			obligations++
			if u.Proof.HasFinancialProof() {
				satisfied++
			}
		}

		if len(u.Proof.Testimonials) > 0 {
			hasTestimonial = true
		}
	}

	obligations++
	if hasTestimonial {
		satisfied++
	}

	return satisfied * 100 / obligations
}
