package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
)

// OrderEmailData feeds the new-order notification template.
type OrderEmailData struct {
	OrderID      uint
	Total        string
	CustomerCity string
	ItemLines    []string
}

// SendOrderNotificationEmail mails the store inbox about a new order. Callers
// treat failures as best-effort: the checkout handoff never waits on SMTP.
func SendOrderNotificationEmail(data OrderEmailData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: Novo pedido #%d\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		data.OrderID,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	storeInbox := os.Getenv("STORE_ORDER_EMAIL")
	if storeInbox == "" {
		storeInbox = os.Getenv("FROM_EMAIL")
	}

	err = smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{storeInbox}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
