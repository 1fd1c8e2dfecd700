package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"clubraise/internal/config"
)

type Service interface {
	SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
	SendImpactPublishedEmail(ctx context.Context, toEmail, recipientName, clubName, impactTitle string) error
	SendReportOverdueEmail(ctx context.Context, toEmail, recipientName, eventTitle string, daysOverdue int) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var bodyTemplate = template.Must(template.New("email").Parse(`
<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>{{.Title}}</h2>
  <p>Hi {{.Name}},</p>
  <p>{{.Body}}</p>
  {{if .Link}}<p><a href="{{.Link}}" style="background:#10b981;color:#fff;padding:10px 18px;border-radius:6px;text-decoration:none;">{{.LinkLabel}}</a></p>{{end}}
  <p style="color:#6b7280;font-size:13px;">Clubraise — impact reporting for community fundraising</p>
</div>`))

type templateData struct {
	Title     string
	Name      string
	Body      string
	Link      string
	LinkLabel string
}

func (s *service) sendEmail(toEmail, subject string, data templateData) error {
	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Clubraise <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error {
	return s.sendEmail(toEmail, "Verify your email - Clubraise", templateData{
		Title:     "Verify your email",
		Name:      fullName,
		Body:      "Confirm your email address to finish setting up your Clubraise account.",
		Link:      fmt.Sprintf("https://%s/verify-email?token=%s", s.config.Domain, verificationToken),
		LinkLabel: "Verify email",
	})
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	return s.sendEmail(toEmail, "Reset your password - Clubraise", templateData{
		Title:     "Reset your password",
		Name:      fullName,
		Body:      "We received a request to reset your password. The link expires in one hour.",
		Link:      fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken),
		LinkLabel: "Reset password",
	})
}

func (s *service) SendImpactPublishedEmail(ctx context.Context, toEmail, recipientName, clubName, impactTitle string) error {
	return s.sendEmail(toEmail, fmt.Sprintf("New impact update from %s", clubName), templateData{
		Title: "Impact update published",
		Name:  recipientName,
		Body:  fmt.Sprintf("%s published a new impact update: %q.", clubName, impactTitle),
	})
}

func (s *service) SendReportOverdueEmail(ctx context.Context, toEmail, recipientName, eventTitle string, daysOverdue int) error {
	return s.sendEmail(toEmail, "Impact report overdue - Clubraise", templateData{
		Title: "Impact report overdue",
		Name:  recipientName,
		Body: fmt.Sprintf(
			"Your event %q is still missing a published impact update (%d day(s) overdue). New campaigns and events stay locked until it is published.",
			eventTitle, daysOverdue,
		),
	})
}
