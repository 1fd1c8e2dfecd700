package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Club         ClubRepository
	Campaign     CampaignRepository
	Event        EventRepository
	Supporter    SupporterRepository
	Prize        PrizeRepository
	Impact       ImpactRepository
	Media        MediaRepository
	AuditLog     AuditLogRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Club:         NewClubRepository(db),
		Campaign:     NewCampaignRepository(db),
		Event:        NewEventRepository(db),
		Supporter:    NewSupporterRepository(db),
		Prize:        NewPrizeRepository(db),
		Impact:       NewImpactRepository(db),
		Media:        NewMediaRepository(db),
		AuditLog:     NewAuditLogRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
