// Package mail is the delivery boundary for OTP and credential emails.
package mail

import (
	"fmt"
	"net/smtp"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.From, to, subject, htmlBody,
	)
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, []byte(msg))
}

// OTPTemplate renders the one-time code email used by the superadmin
// register and login flows.
func OTPTemplate(name, code, purpose string) string {
	return fmt.Sprintf(`<div style="font-family: Arial; padding: 20px;">
  <h2>Hello %s,</h2>
  <p>Your one-time code to %s is:</p>
  <h1 style="letter-spacing: 4px;">%s</h1>
  <p>The code expires shortly. If you did not request it, ignore this email.</p>
</div>`, name, purpose, code)
}

// WelcomeTemplate renders the credentials email sent when a superadmin
// creates a staff account.
func WelcomeTemplate(name, email, tempPassword, loginURL string) string {
	return fmt.Sprintf(`<div style="font-family: Arial; padding: 20px;">
  <h2>Welcome, %s!</h2>
  <p>Your admin account has been created.</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Temporary Password:</strong> %s</p>
  <p>Please log in and change your password immediately.</p>
  <a href="%s">Login</a>
</div>`, name, email, tempPassword, loginURL)
}
