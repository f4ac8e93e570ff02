package logger

import (
	"sync"
	"testing"

	"github.com/Layr-Labs/hhconfig/pkg/common/iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ iface.Logger = (*NoopLogger)(nil)
	_ iface.Logger = (*BasicLogger)(nil)
	_ iface.Logger = (*ZapLogger)(nil)
)

func TestNoopLogger_LoggingMethods(t *testing.T) {
	logger := NewNoopLogger()

	logger.Title("Network %s", "rinkeby")
	logger.Info("Loaded %d accounts", 1)
	logger.Warn("secret %s is world readable", ".secret")
	logger.Error("probe failed: %v", "timeout")
	logger.Debug("override %s not found", "config/hardhat.override.yaml")

	entries := logger.GetEntries()
	require.Len(t, entries, 5)

	assert.Equal(t, "TITLE", entries[0].Level)
	assert.Contains(t, entries[0].Message, "Network rinkeby")
	assert.Equal(t, LogEntry{Level: "INFO", Message: "Loaded 1 accounts"}, entries[1])
	assert.Equal(t, LogEntry{Level: "WARN", Message: "secret .secret is world readable"}, entries[2])
	assert.Equal(t, LogEntry{Level: "ERROR", Message: "probe failed: timeout"}, entries[3])
	assert.Equal(t, LogEntry{Level: "DEBUG", Message: "override config/hardhat.override.yaml not found"}, entries[4])
}

func TestNoopLogger_EmptyMessages(t *testing.T) {
	logger := NewNoopLogger()

	logger.Info("")
	logger.Info("\n\n")
	logger.Warn("")
	logger.Error("")
	logger.Debug("")
	logger.Title("")

	require.Equal(t, 1, logger.Len())
	assert.Equal(t, "TITLE", logger.GetEntries()[0].Level)
}

func TestNoopLogger_Filtering(t *testing.T) {
	logger := NewNoopLogger()

	logger.Info("info 1")
	logger.Error("error 1")
	logger.Info("info 2")

	assert.Equal(t, []string{"info 1", "info 2"}, logger.GetMessagesByLevel("INFO"))
	assert.Equal(t, []string{"error 1"}, logger.GetMessagesByLevel("ERROR"))
	assert.Empty(t, logger.GetMessagesByLevel("DEBUG"))

	assert.True(t, logger.Contains("error 1"))
	assert.True(t, logger.ContainsLevel("INFO", "info 2"))
	assert.False(t, logger.ContainsLevel("ERROR", "info 2"))

	logger.Clear()
	assert.Equal(t, 0, logger.Len())
	assert.False(t, logger.Contains("info"))
}

func TestNoopLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNoopLogger()
	const workers = 50
	const perWorker = 10

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				logger.Info("worker %d message %d", id, j)
				_ = logger.Contains("worker")
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, logger.Len())
}
