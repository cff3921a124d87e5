package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type Outcome string

const (
	OutcomeOK           Outcome = "ok"
	OutcomeConnectivity Outcome = "connectivity"
	OutcomeExecution    Outcome = "execution"
)

// Result is the per-call outcome of an inventory operation.
// Fallback is true when Value holds placeholder data instead of store data.
type Result[T any] struct {
	Value    T       `json:"data"`
	Outcome  Outcome `json:"outcome"`
	Fallback bool    `json:"fallback"`
	Status   string  `json:"status"`
	Err      error   `json:"-"`
}

func (r Result[T]) OK() bool {
	return r.Outcome == OutcomeOK
}

// Classify maps a store error to an outcome. Server-reported SQL errors are execution
// failures except connection-exception (08xxx) and shutdown (57P0x) states.
// Unrecognised errors count as connectivity failures.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return sqlStateOutcome(string(pqErr.Code))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return sqlStateOutcome(pgErr.Code)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return OutcomeExecution
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return OutcomeConnectivity
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return OutcomeConnectivity
	}
	if strings.HasPrefix(err.Error(), "sql: Scan error") {
		return OutcomeExecution
	}
	return OutcomeConnectivity
}

func sqlStateOutcome(code string) Outcome {
	if strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P") {
		return OutcomeConnectivity
	}
	return OutcomeExecution
}
