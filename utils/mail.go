package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"
)

type OrderEmailItem struct {
	Name     string
	Quantity int
	Price    float64
}

type OrderEmailData struct {
	Name        string
	OrderRef    string
	TotalAmount float64
	Items       []OrderEmailItem
}

// Mailer sends templated emails over SMTP. It is nil when the SMTP env is not
// configured, in which case callers skip sending.
type Mailer struct {
	from     string
	password string
	addr     string
}

func NewMailerFromEnv() *Mailer {
	from := os.Getenv("FROM_EMAIL")
	addr := os.Getenv("SMTP_ADDRESS")
	if from == "" || addr == "" {
		return nil
	}
	return &Mailer{
		from:     from,
		password: os.Getenv("FROM_EMAIL_PASSWORD"),
		addr:     addr,
	}
}

// SendOrderConfirmation emails an order summary after checkout. Failures are
// the caller's to log; the order itself is already committed.
func (m *Mailer) SendOrderConfirmation(emailTo string, data OrderEmailData) error {
	templatePath := filepath.Join("templates", "order_confirmation.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.from,
		"Order Confirmation",
		body.String(),
	)

	auth := smtp.PlainAuth("", m.from, m.password, os.Getenv("FROM_EMAIL_SMTP"))

	if err := smtp.SendMail(m.addr, auth, m.from, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
