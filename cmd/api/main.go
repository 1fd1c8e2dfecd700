package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"clubraise/internal/config"
	"clubraise/internal/handler"
	"clubraise/internal/middleware"
	"clubraise/internal/repository"
	"clubraise/internal/service"
	"clubraise/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	go services.TrustReminder.Run(context.Background())

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Extract real IP and User-Agent for the audit log.
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/logout", h.Auth.Logout)
	authGroup.Post("/forgot-password", h.Auth.ForgotPassword)
	authGroup.Post("/reset-password", h.Auth.ResetPassword)
	authGroup.Get("/verify-email", h.Auth.VerifyEmail)
	authGroup.Post("/resend-verification", h.Auth.ResendVerificationEmail)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.Auth.Me)
	users.Post("/assign-role", middleware.RequireRole("admin"), h.Auth.AssignRole)

	clubs := protected.Group("/clubs")
	clubs.Post("/", h.Club.Create)
	clubs.Get("/", h.Club.List)
	clubs.Get("/slug/:slug", h.Club.GetBySlug)
	clubs.Get("/:clubId", h.Club.Get)
	clubs.Put("/:clubId", middleware.RequireRole("host"), h.Club.Update)
	clubs.Delete("/:clubId", middleware.RequireRole("host"), h.Club.Delete)
	clubs.Get("/:clubId/impact-areas", h.Club.ImpactAreas)

	clubs.Get("/:clubId/campaigns", h.Campaign.ListByClub)
	clubs.Get("/:clubId/events", h.Event.ListByClub)
	clubs.Get("/:clubId/supporters", middleware.RequireRole("host"), h.Supporter.ListByClub)
	clubs.Get("/:clubId/prizes", h.Prize.ListByClub)
	clubs.Get("/:clubId/media", h.Media.ListByClub)
	clubs.Get("/:clubId/dashboard", middleware.RequireRole("host"), h.Dashboard.GetStats)
	clubs.Get("/:clubId/audit", middleware.RequireRole("host"), h.Audit.ListByClub)
	clubs.Get("/:clubId/audit/recent", middleware.RequireRole("host"), h.Audit.RecentActivity)
	clubs.Get("/:clubId/export/supporters", middleware.RequireRole("host"), h.Export.SupportersCSV)
	clubs.Get("/:clubId/export/impact", middleware.RequireRole("host"), h.Export.ImpactCSV)

	clubs.Get("/:clubId/impact", h.Impact.ListByClub)
	clubs.Get("/:clubId/impact/score", h.Impact.ClubScore)
	clubs.Get("/:clubId/impact/trust", h.Impact.TrustStatus)

	campaigns := protected.Group("/campaigns")
	campaigns.Post("/", middleware.RequireRole("host"), h.Campaign.Create)
	campaigns.Get("/:campaignId", h.Campaign.Get)
	campaigns.Put("/:campaignId", middleware.RequireRole("host"), h.Campaign.Update)
	campaigns.Delete("/:campaignId", middleware.RequireRole("host"), h.Campaign.Delete)
	campaigns.Get("/:campaignId/impact", h.Impact.ListByCampaign)
	campaigns.Get("/:campaignId/impact/summary", h.Impact.CampaignSummary)

	events := protected.Group("/events")
	events.Post("/", middleware.RequireRole("host"), h.Event.Create)
	events.Get("/:eventId", h.Event.Get)
	events.Put("/:eventId", middleware.RequireRole("host"), h.Event.Update)
	events.Delete("/:eventId", middleware.RequireRole("host"), h.Event.Delete)
	events.Get("/:eventId/impact", h.Impact.ListByEvent)
	events.Get("/:eventId/impact/summary", h.Impact.EventSummary)

	impact := protected.Group("/impact")
	impact.Post("/", middleware.RequireRole("host"), h.Impact.Create)
	impact.Get("/:impactId", h.Impact.Get)
	impact.Put("/:impactId", middleware.RequireRole("host"), h.Impact.Update)
	impact.Delete("/:impactId", middleware.RequireRole("host"), h.Impact.Delete)
	impact.Patch("/:impactId/publish", middleware.RequireRole("host"), h.Impact.Publish)
	impact.Get("/:impactId/validation", h.Impact.Validation)
	impact.Get("/:impactId/can-mark-final", h.Impact.CanMarkFinal)
	impact.Patch("/:impactId/mark-final", middleware.RequireRole("host"), h.Impact.MarkFinal)
	impact.Patch("/:impactId/verify", middleware.RequireRole("admin"), h.Impact.Verify)
	impact.Patch("/:impactId/flag", middleware.RequireRole("admin"), h.Impact.Flag)

	supporters := protected.Group("/supporters")
	supporters.Post("/", middleware.RequireRole("host"), h.Supporter.Create)
	supporters.Get("/:supporterId", middleware.RequireRole("host"), h.Supporter.Get)
	supporters.Put("/:supporterId", middleware.RequireRole("host"), h.Supporter.Update)
	supporters.Delete("/:supporterId", middleware.RequireRole("host"), h.Supporter.Delete)

	prizes := protected.Group("/prizes")
	prizes.Post("/", middleware.RequireRole("host"), h.Prize.Create)
	prizes.Get("/:prizeId", h.Prize.Get)
	prizes.Put("/:prizeId", middleware.RequireRole("host"), h.Prize.Update)
	prizes.Delete("/:prizeId", middleware.RequireRole("host"), h.Prize.Delete)
	prizes.Post("/:prizeId/award", middleware.RequireRole("host"), h.Prize.Award)

	media := protected.Group("/media")
	media.Post("/", middleware.RequireRole("host"), h.Media.Upload)
	media.Get("/:mediaId", h.Media.Get)
	media.Delete("/:mediaId", middleware.RequireRole("host"), h.Media.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.CountUnread)
	notifications.Patch("/:notificationId/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
}
