package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	host string
	port string
	from string
	auth smtp.Auth
}

func NewMailer(host, port, username, password, from string) *Mailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &Mailer{host: host, port: port, from: from, auth: auth}
}

// SendOTP delivers a one-time code to the given address.
func (m *Mailer) SendOTP(to, code string) error {
	subject := "Your DevConnect verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, m.auth, m.from, []string{to}, msg); err != nil {
		logrus.WithError(err).WithField("to", to).Error("Failed to send OTP email")
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	logrus.WithField("to", to).Info("OTP email sent")
	return nil
}
