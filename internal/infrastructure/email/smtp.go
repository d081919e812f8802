package email

import (
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
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

// Sender mirrors in-app notifications to a member's inbox.
type Sender interface {
	SendNotificationEmail(to, subject, title, body, ticketURL string) error
	SendAccountApprovedEmail(to, firstName string) error
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

func (s *SMTPEmailService) SendNotificationEmail(to, subject, title, body, ticketURL string) error {
	link := ""
	if ticketURL != "" {
		link = fmt.Sprintf(`<p><a href="%s">View ticket</a></p>`, ticketURL)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			%s
		</body>
		</html>
	`, title, body, link)

	plainBody := fmt.Sprintf("%s\n\n%s\n", title, body)
	if ticketURL != "" {
		plainBody += fmt.Sprintf("\nView ticket: %s\n", ticketURL)
	}

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAccountApprovedEmail(to, firstName string) error {
	loginURL := fmt.Sprintf("%s/login", s.config.BaseURL)

	subject := "Your Account Has Been Approved"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome aboard, %s!</h2>
			<p>An administrator has approved your account. You can now sign in:</p>
			<p><a href="%s">Sign In</a></p>
		</body>
		</html>
	`, firstName, loginURL)

	plainBody := fmt.Sprintf(`
Welcome aboard, %s!

An administrator has approved your account. You can now sign in at:
%s
	`, firstName, loginURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
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

// NoopSender drops all mail. Used when email delivery is disabled.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) SendNotificationEmail(to, subject, title, body, ticketURL string) error {
	return nil
}

func (s *NoopSender) SendAccountApprovedEmail(to, firstName string) error {
	return nil
}
