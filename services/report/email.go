package report

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/report")

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type EmailConfig struct {
	Smtp SmtpConfig `json:"smtp"`
	To   []string   `json:"to"`
}

// Email sends the rendered HTML report as an attachment.
func Email(ctx context.Context, config EmailConfig, reportPath string) error {
	_, span := tracer.Start(ctx, "Email")
	defer span.End()

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Gridiron Reports <%s>", config.Smtp.EmailAddress)
	mail.To = config.To
	mail.Subject = "NFL Player Emotions Report"
	mail.Text = []byte("The latest player demographics and emotions report is attached.")

	if _, err := mail.AttachFile(reportPath); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", config.Smtp.Server, config.Smtp.Port)
	err := mail.Send(addr,
		smtp.PlainAuth("", config.Smtp.EmailAddress, config.Smtp.Password, config.Smtp.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	return err
}
