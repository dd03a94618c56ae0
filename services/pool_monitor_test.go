package services

import (
	"bytes"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct{ stats sql.DBStats }

func (f fakeStats) Stats() sql.DBStats { return f.stats }

func TestLogPoolStats(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	NewPoolMonitor(fakeStats{sql.DBStats{MaxOpenConnections: 10, OpenConnections: 3, InUse: 2, Idle: 1}}, logger).LogPoolStats()
	out := buf.String()
	assert.Contains(t, out, `"msg":"database pool stats"`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"in_use":2`)

	buf.Reset()
	NewPoolMonitor(fakeStats{sql.DBStats{MaxOpenConnections: 2, InUse: 2}}, logger).LogPoolStats()
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestPoolMonitorScheduler(t *testing.T) {
	var buf bytes.Buffer
	m := NewPoolMonitor(fakeStats{}, slog.New(slog.NewJSONHandler(&buf, nil)))

	assert.Error(t, m.StartScheduler("not a schedule"))

	require.NoError(t, m.StartScheduler("@every 1h"))
	m.Stop()
	assert.Contains(t, buf.String(), "pool stats scheduler started")
}
