package mailer

import (
	"fmt"
	"strconv"

	"github.com/taskmate/daily-task-backend/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers password-reset codes.
type Mailer interface {
	SendOTP(to, code string) error
}

// SMTPMailer sends mail through a plain SMTP account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates an SMTPMailer from the email settings in cfg.
func New(cfg *config.Config) (*SMTPMailer, error) {
	port, err := strconv.Atoi(cfg.EmailPort)
	if err != nil {
		return nil, fmt.Errorf("invalid EMAIL_PORT %q: %w", cfg.EmailPort, err)
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.EmailHost, port, cfg.EmailUser, cfg.EmailPass),
		from:   cfg.EmailFrom,
	}, nil
}

// SendOTP mails the reset code to the given address.
func (m *SMTPMailer) SendOTP(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset OTP")
	msg.SetBody("text/html", fmt.Sprintf(`
        <h2>Password Reset Request</h2>
        <p>Your OTP for password reset is: <strong>%s</strong></p>
        <p>This OTP will expire in 5 minutes.</p>
      `, code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}
