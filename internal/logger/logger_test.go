package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestStoreResult(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "debug", "json")
	defer Initialize("info", "text")

	StoreResult("ListShelves", 3, nil)
	StoreResult("RentShelf", 0, errors.New("connection refused"), "shelf_id", 2)

	out := buf.String()
	assert.Contains(t, out, `"msg":"← Store call succeeded"`)
	assert.Contains(t, out, `"rows_affected":3`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"error":"connection refused"`)
	assert.Contains(t, out, `"shelf_id":2`)
}

func TestInitializeWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "warn", "text")
	defer Initialize("info", "text")

	Info("hidden")
	Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
