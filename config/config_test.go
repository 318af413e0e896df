package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"library-management/config"
)

func TestNewConfig_OptionsWinOverDefaults(t *testing.T) {
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("HTTP_READ")

	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.WarnLevel),
		config.WithWriteTimeout(42*time.Second),
	)

	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
	require.Equal(t, 42*time.Second, cfg.Server.WriteTimeout)

	// envconfig defaults still fill everything the options left alone
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}
