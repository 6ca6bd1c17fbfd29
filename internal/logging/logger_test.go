package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_FileOutput(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "app.log")

	logger, err := logging.New(config.LoggingConfig{
		Mode:       "production",
		Level:      "info",
		FileEnable: true,
		Filename:   filename,
	})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("order placed", zap.String("orderID", "42"))
	_ = logger.Sync()

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"order placed"`)
	assert.Contains(t, string(content), `"orderID":"42"`)
	assert.NotContains(t, string(content), "hidden")

	assert.Same(t, logger, zap.L())
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "chatty"})
	require.Error(t, err)
}
