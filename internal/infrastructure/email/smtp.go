package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // base URL for links in the email body
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendWelcomeEmail delivers the onboarding email with the temporary password
// for a freshly provisioned condominium administrator.
func (s *SMTPEmailService) SendWelcomeEmail(ctx context.Context, to, adminName, condominiumName, tempPassword string) error {
	subject := fmt.Sprintf("Welcome to EdifAI: %s", condominiumName)
	loginURL := fmt.Sprintf("%s/login", s.config.BaseURL)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to EdifAI, %s!</h2>
			<p>Your condominium <strong>%s</strong> has been set up and is ready to use.</p>
			<p>Sign in with this email address and the temporary password below:</p>
			<p><code>%s</code></p>
			<p><a href="%s">Sign in</a></p>
			<p>Please change your password after your first login.</p>
		</body>
		</html>
	`, adminName, condominiumName, tempPassword, loginURL)

	plainBody := fmt.Sprintf(`
Welcome to EdifAI, %s!

Your condominium %s has been set up and is ready to use.

Sign in with this email address and the temporary password below:

%s

Sign in at: %s

Please change your password after your first login.
	`, adminName, condominiumName, tempPassword, loginURL)

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
