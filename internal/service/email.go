package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"shelfrent-backend/internal/domain"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/utils"
)

type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type sendGridMailer struct {
	client    sendClient
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) Mailer {
	return &sendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *sendGridMailer) SendStatement(ctx context.Context, st domain.RentStatement) error {
	if st.CustomerEmail == "" {
		return fmt.Errorf("customer %d has no email address", st.CustomerID)
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(st.CustomerName, st.CustomerEmail)
	text := StatementText(st)
	message := mail.NewSingleEmail(from, StatementSubject(st), to, text, "<pre>"+html.EscapeString(text)+"</pre>")

	response, err := m.client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "SendStatement", err, "customer_id", st.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to send statement: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

type logMailer struct{}

// NewLogMailer returns a Mailer that only logs statements, used when no SendGrid key is configured
func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) SendStatement(ctx context.Context, st domain.RentStatement) error {
	logger.InfoContext(ctx, "Monthly statement (email disabled)",
		"customer_id", st.CustomerID,
		"shelves", st.ShelfCount,
		"monthly_total", st.MonthlyTotal)
	return nil
}

func StatementSubject(st domain.RentStatement) string {
	return fmt.Sprintf("Shelf rent statement: %s kr.", utils.FormatAmount(st.MonthlyTotal))
}

// StatementText is the plain-text body of a statement email
func StatementText(st domain.RentStatement) string {
	numbers := make([]string, len(st.ShelfNumbers))
	for i, n := range st.ShelfNumbers {
		numbers[i] = fmt.Sprintf("%d", n)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", st.CustomerName)
	fmt.Fprintf(&b, "You are renting %d shelf/shelves: %s.\n", st.ShelfCount, strings.Join(numbers, ", "))
	fmt.Fprintf(&b, "Price per shelf: %s kr.\n", utils.FormatAmount(st.PricePerShelf))
	fmt.Fprintf(&b, "Total this month: %s kr.\n", utils.FormatAmount(st.MonthlyTotal))
	return b.String()
}
