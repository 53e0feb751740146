package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/haircareai/follicle-api/internal/config"
)

// Mailer sends account mail through the configured SMTP relay.
type Mailer interface {
	SendPasswordReset(toEmail, fullName, resetLink string) error
}

var _ Mailer = (*NotificationService)(nil)

// NotificationService is the SMTP-backed Mailer.
type NotificationService struct {
	cfg config.MailConfig
}

func NewNotificationService(cfg config.MailConfig) *NotificationService {
	return &NotificationService{cfg: cfg}
}

// SendPasswordReset delivers the reset link to the account's email address.
func (s *NotificationService) SendPasswordReset(toEmail, fullName, resetLink string) error {
	if fullName == "" {
		fullName = "User"
	}
	htmlBody := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
		<h2 style="color: #2563eb;">HairCare AI Password Reset</h2>
		<p>Hello %s,</p>
		<p>Click the button below to reset your password:</p>
		<a href="%s" style="display: inline-block; padding: 10px 20px; background: #2563eb; color: white; text-decoration: none; border-radius: 5px; font-weight: bold;">Reset Password</a>
		<p style="margin-top: 20px; color: #666; font-size: 12px;">This link expires in 30 minutes.</p>
	</div>`, fullName, resetLink)

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Password Reset Request - HairCare AI")
	m.SetBody("text/html", htmlBody)

	// Port 587 with STARTTLS; gomail negotiates it automatically.
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}
