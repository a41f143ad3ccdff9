package email

import (
	"fmt"
	"net/smtp"
	"os"
)

// Service sends transactional mail over plain SMTP, configured from the
// environment.
type Service struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewService() *Service {
	return &Service{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

// Configured reports whether SMTP settings are present. When they are not,
// the caller falls back to log-based code delivery.
func (e *Service) Configured() bool {
	return e.host != "" && e.port != "" && e.from != ""
}

// Send implements auth.CodeDelivery: mails the login code to the admin.
func (e *Service) Send(to, code string) error {
	subject := "Your admin login code"
	body := fmt.Sprintf(`Hello,

Your one-time login code is:

%s

It expires in 5 minutes. If you did not request this code, ignore this email.
`, code)

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", e.from, to, subject, body)

	auth := smtp.PlainAuth("", e.user, e.password, e.host)
	addr := fmt.Sprintf("%s:%s", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("sending login code email: %w", err)
	}
	return nil
}
