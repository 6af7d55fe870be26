package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A termination signal drains the server and runs the registered
// stoppers before Serve returns.
func TestServeStopsBackgroundComponentsOnSignal(t *testing.T) {
	app := testApp()
	app.Config.HTTPPort = "127.0.0.1:0"

	var stopped atomic.Int32
	stopper := func(ctx context.Context) error {
		stopped.Add(1)
		return nil
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Serve(http.NewServeMux(), stopper, stopper)
	}()

	// Give Serve time to install its signal handler before signalling.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case err := <-serveErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Equal(t, int32(2), stopped.Load())
}
