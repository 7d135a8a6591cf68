package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/handler"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, config.Server{}, prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)

	s, err = NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestRunServer_GracefulShutdownOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:-1", ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	assert.Error(t, err)
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	h := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, h.Shutdown(context.Background()))
	// a closed server reports ErrServerClosed, which is not an error here
	assert.NoError(t, h.RunServer())
}
