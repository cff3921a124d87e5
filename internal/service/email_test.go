package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfrent-backend/internal/domain"
)

type fakeSendClient struct {
	sent     []*mail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeSendClient) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	return f.response, f.err
}

var sampleStatement = domain.RentStatement{
	CustomerID:    4,
	CustomerName:  "Anna",
	CustomerEmail: "anna@example.com",
	ShelfNumbers:  []int{2, 5},
	ShelfCount:    2,
	PricePerShelf: 825,
	MonthlyTotal:  1650,
}

func TestStatementText(t *testing.T) {
	text := StatementText(sampleStatement)
	assert.Contains(t, text, "Hello Anna,")
	assert.Contains(t, text, "You are renting 2 shelf/shelves: 2, 5.")
	assert.Contains(t, text, "Price per shelf: 825 kr.")
	assert.Contains(t, text, "Total this month: 1650 kr.")
	assert.Equal(t, "Shelf rent statement: 1650 kr.", StatementSubject(sampleStatement))
}

func TestSendGridMailer_SendStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := &fakeSendClient{response: &rest.Response{StatusCode: http.StatusAccepted}}
		m := &sendGridMailer{client: client, fromEmail: "shop@example.com", fromName: "Shelf Rental"}

		require.NoError(t, m.SendStatement(ctx, sampleStatement))
		require.Len(t, client.sent, 1)
		msg := client.sent[0]
		assert.Equal(t, "shop@example.com", msg.From.Address)
		assert.Equal(t, "Shelf rent statement: 1650 kr.", msg.Subject)
		require.Len(t, msg.Personalizations, 1)
		assert.Equal(t, "anna@example.com", msg.Personalizations[0].To[0].Address)
	})

	t.Run("Missing address", func(t *testing.T) {
		client := &fakeSendClient{}
		m := &sendGridMailer{client: client}

		st := sampleStatement
		st.CustomerEmail = ""
		assert.Error(t, m.SendStatement(ctx, st))
		assert.Empty(t, client.sent)
	})

	t.Run("Rejected by API", func(t *testing.T) {
		client := &fakeSendClient{response: &rest.Response{StatusCode: http.StatusUnauthorized, Body: "bad key"}}
		m := &sendGridMailer{client: client, fromEmail: "shop@example.com"}

		err := m.SendStatement(ctx, sampleStatement)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "401"))
	})

	t.Run("Transport error", func(t *testing.T) {
		client := &fakeSendClient{err: errors.New("timeout")}
		m := &sendGridMailer{client: client, fromEmail: "shop@example.com"}

		assert.ErrorContains(t, m.SendStatement(ctx, sampleStatement), "timeout")
	})
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, NewLogMailer().SendStatement(context.Background(), sampleStatement))
}
