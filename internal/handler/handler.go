package handler

import "clubraise/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Club         *ClubHandler
	Campaign     *CampaignHandler
	Event        *EventHandler
	Supporter    *SupporterHandler
	Prize        *PrizeHandler
	Impact       *ImpactHandler
	Media        *MediaHandler
	Dashboard    *DashboardHandler
	Notification *NotificationHandler
	Audit        *AuditHandler
	Export       *ExportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Club:         NewClubHandler(services.Club),
		Campaign:     NewCampaignHandler(services.Campaign),
		Event:        NewEventHandler(services.Event),
		Supporter:    NewSupporterHandler(services.Supporter),
		Prize:        NewPrizeHandler(services.Prize),
		Impact:       NewImpactHandler(services.Impact, services.Trust),
		Media:        NewMediaHandler(services.Media),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Notification: NewNotificationHandler(services.Notification),
		Audit:        NewAuditHandler(services.Audit),
		Export:       NewExportHandler(services.Export),
	}
}
