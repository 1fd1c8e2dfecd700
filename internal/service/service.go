package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"clubraise/internal/config"
	"clubraise/internal/repository"
	"clubraise/internal/service/audit"
	"clubraise/internal/service/auth"
	"clubraise/internal/service/campaign"
	"clubraise/internal/service/club"
	"clubraise/internal/service/dashboard"
	"clubraise/internal/service/email"
	"clubraise/internal/service/event"
	"clubraise/internal/service/export"
	"clubraise/internal/service/impact"
	"clubraise/internal/service/media"
	"clubraise/internal/service/notification"
	"clubraise/internal/service/prize"
	"clubraise/internal/service/supporter"
	"clubraise/internal/service/trust"
)

type Services struct {
	Auth         auth.Service
	Club         club.Service
	Campaign     campaign.Service
	Event        event.Service
	Supporter    supporter.Service
	Prize        prize.Service
	Impact       impact.Service
	Trust        trust.Service
	Media        media.Service
	Email        email.Service
	Audit        audit.Service
	Notification notification.Service
	Dashboard    dashboard.Service
	Export       export.Service

	TrustReminder *trust.Reminder
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	trustService := trust.NewService(repos.Event, repos.Impact, redis, cfg.ImpactGraceDays)
	notificationService := notification.NewService(repos.Notification, repos.User, emailService)

	impactService := impact.NewService(repos.Impact, repos.Club, repos.AuditLog, trustService, redis)
	impactService.SetNotificationService(notificationService)

	clubService := club.NewService(repos.Club, repos.User)
	campaignService := campaign.NewService(repos.Campaign, trustService)
	eventService := event.NewService(repos.Event, trustService)
	supporterService := supporter.NewService(repos.Supporter)
	prizeService := prize.NewService(repos.Prize, repos.Supporter, repos.AuditLog, notificationService)
	mediaService := media.NewService(repos.Media, minioClient, cfg)
	auditService := audit.NewService(repos.AuditLog)
	dashboardService := dashboard.NewService(repos.Campaign, repos.Event, repos.Supporter, repos.Impact, impactService, trustService, redis)
	exportService := export.NewService(repos.Supporter, repos.Impact)
	trustReminder := trust.NewReminder(repos.Club, repos.User, trustService, emailService)

	return &Services{
		Auth:         authService,
		Club:         clubService,
		Campaign:     campaignService,
		Event:        eventService,
		Supporter:    supporterService,
		Prize:        prizeService,
		Impact:       impactService,
		Trust:        trustService,
		Media:        mediaService,
		Email:        emailService,
		Audit:        auditService,
		Notification: notificationService,
		Dashboard:    dashboardService,
		Export:       exportService,

		TrustReminder: trustReminder,
	}
}
