package jobs

import (
	"context"

	"shelfrent-backend/internal/logger"
)

// StatementRun summarises one pass of the monthly statement job
type StatementRun struct {
	Skipped bool
	Sent    int
	NoEmail int
	Failed  int
}

// SendMonthlyStatements emails every renting customer the rent owed this month
func (jr *JobRunner) SendMonthlyStatements() {
	jr.runWithRecovery("SendMonthlyStatements", func() {
		jr.sendMonthlyStatements(context.Background())
	})
}

func (jr *JobRunner) sendMonthlyStatements(ctx context.Context) StatementRun {
	res := jr.inventory.Statements(ctx)
	if res.Fallback {
		// Placeholder shelves must never be billed
		logger.Warn("Store unavailable, skipping monthly statements", "status", res.Status)
		return StatementRun{Skipped: true}
	}

	var run StatementRun
	for _, st := range res.Value {
		if st.CustomerEmail == "" {
			logger.Debug("Customer has no email address", "customer_id", st.CustomerID)
			run.NoEmail++
			continue
		}
		if err := jr.mailer.SendStatement(ctx, st); err != nil {
			logger.Error("Failed to send statement", "customer_id", st.CustomerID, "error", err)
			run.Failed++
			continue
		}
		run.Sent++
	}

	logger.Info("Monthly statements processed",
		"sent", run.Sent,
		"no_email", run.NoEmail,
		"failed", run.Failed)
	return run
}
