package trust

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
	"clubraise/internal/service/email"
)

// Reminder emails a club's hosts about overdue impact reports. It sweeps all
// clubs once per interval; clubs inside the grace window are skipped.
type Reminder struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
	trustSvc Service
	emailSvc email.Service
	interval time.Duration
}

func NewReminder(clubRepo repository.ClubRepository, userRepo repository.UserRepository, trustSvc Service, emailSvc email.Service) *Reminder {
	return &Reminder{
		clubRepo: clubRepo,
		userRepo: userRepo,
		trustSvc: trustSvc,
		emailSvc: emailSvc,
		interval: 24 * time.Hour,
	}
}

// Run blocks, sweeping once per interval until the context is cancelled.
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Sweep(ctx); err != nil {
				log.Printf("overdue reminder sweep failed: %v", err)
			}
		}
	}
}

// Sweep walks every club and emails its hosts one message per overdue event.
func (r *Reminder) Sweep(ctx context.Context) error {
	params := domain.PaginationParams{Page: 1, PageSize: 100}
	for {
		clubs, total, err := r.clubRepo.List(ctx, params)
		if err != nil {
			return err
		}

		for i := range clubs {
			if err := r.remindClub(ctx, clubs[i].ID); err != nil {
				log.Printf("overdue reminder for club %s failed: %v", clubs[i].ID, err)
			}
		}

		if int64(params.Page*params.PageSize) >= total {
			return nil
		}
		params.Page++
	}
}

func (r *Reminder) remindClub(ctx context.Context, clubID uuid.UUID) error {
	status, err := r.trustSvc.Status(ctx, clubID)
	if err != nil {
		return err
	}
	if status.OverdueDays == 0 {
		return nil
	}

	hosts, err := r.userRepo.ListHostsByClub(ctx, clubID)
	if err != nil {
		return err
	}

	for _, report := range status.Outstanding {
		if report.DaysOverdue == 0 {
			continue
		}
		for _, host := range hosts {
			if err := r.emailSvc.SendReportOverdueEmail(ctx, host.Email, host.FullName, report.EventTitle, report.DaysOverdue); err != nil {
				log.Printf("overdue reminder email to %s failed: %v", host.Email, err)
			}
		}
	}
	return nil
}
