package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shelfrent-backend/internal/config"
	"shelfrent-backend/internal/domain"
	"shelfrent-backend/internal/service"
)

type MockInventory struct {
	mock.Mock
	service.InventoryService
}

func (m *MockInventory) Statements(ctx context.Context) service.Result[[]domain.RentStatement] {
	return m.Called(ctx).Get(0).(service.Result[[]domain.RentStatement])
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendStatement(ctx context.Context, st domain.RentStatement) error {
	return m.Called(ctx, st).Error(0)
}

func TestSendMonthlyStatements(t *testing.T) {
	anna := domain.RentStatement{CustomerID: 1, CustomerName: "Anna", CustomerEmail: "anna@example.com", ShelfCount: 1, MonthlyTotal: 850}
	bo := domain.RentStatement{CustomerID: 2, CustomerName: "Bo", ShelfCount: 2, MonthlyTotal: 1650}
	cy := domain.RentStatement{CustomerID: 3, CustomerName: "Cy", CustomerEmail: "cy@example.com", ShelfCount: 4, MonthlyTotal: 3200}

	inventory := new(MockInventory)
	inventory.On("Statements", mock.Anything).Return(service.Result[[]domain.RentStatement]{
		Value:   []domain.RentStatement{anna, bo, cy},
		Outcome: service.OutcomeOK,
	})
	mailer := new(MockMailer)
	mailer.On("SendStatement", mock.Anything, anna).Return(nil)
	mailer.On("SendStatement", mock.Anything, cy).Return(errors.New("sendgrid error: status 500"))

	jr := NewJobRunner(inventory, mailer, &config.Config{})
	run := jr.sendMonthlyStatements(context.Background())

	assert.Equal(t, StatementRun{Sent: 1, NoEmail: 1, Failed: 1}, run)
	mailer.AssertExpectations(t)
	mailer.AssertNotCalled(t, "SendStatement", mock.Anything, bo)
}

func TestSendMonthlyStatements_SkipsPlaceholderData(t *testing.T) {
	inventory := new(MockInventory)
	inventory.On("Statements", mock.Anything).Return(service.Result[[]domain.RentStatement]{
		Value:    []domain.RentStatement{{CustomerID: 1, CustomerEmail: "offline1@test.com"}},
		Outcome:  service.OutcomeConnectivity,
		Fallback: true,
		Status:   "Offline – connection refused",
	})
	mailer := new(MockMailer)

	jr := NewJobRunner(inventory, mailer, &config.Config{})
	run := jr.sendMonthlyStatements(context.Background())

	assert.True(t, run.Skipped)
	mailer.AssertNotCalled(t, "SendStatement", mock.Anything, mock.Anything)
}

func TestRunWithRecovery(t *testing.T) {
	jr := NewJobRunner(nil, nil, &config.Config{})
	assert.NotPanics(t, func() {
		jr.runWithRecovery("boom", func() { panic("boom") })
	})
}
