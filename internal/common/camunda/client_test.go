package camunda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bizstart-workers/internal/common/config"
	"bizstart-workers/internal/common/logger"
)

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom(config.CamundaConfig{
		BrokerAddress:   "zeebe:26500",
		UsePlaintext:    true,
		RequestTimeout:  1500,
		ConnectAttempts: 3,
	})

	assert.Equal(t, "zeebe:26500", cfg.GatewayAddress)
	assert.True(t, cfg.UsePlaintextConnection)
	assert.Equal(t, 1500*time.Millisecond, cfg.ConnectionTimeout)
	assert.Equal(t, 3, cfg.ConnectAttempts)
	assert.Equal(t, 2*time.Second, cfg.InitialBackoff)
}

func TestStartWorker_Disabled(t *testing.T) {
	w := StartWorker(nil, "resolve-location", config.WorkerConfig{Enabled: false}, nil, logger.NewTestLogger(t))

	assert.Nil(t, w)
	assert.NotPanics(t, w.Close)
}
