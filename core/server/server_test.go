package server_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellserve/core/server"
)

// testHandler creates a simple test handler
func testHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "OK")
	})
}

func TestServerStartAndStop(t *testing.T) {
	t.Parallel()

	port := getFreePort(t)
	addr := fmt.Sprintf("%s:%d", testHost, port)

	srv := server.New(addr, server.WithShutdownTimeout(2*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = srv.Run(ctx, testHandler())()
	}()

	// Give server time to bind
	time.Sleep(50 * time.Millisecond)

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	cancel()
	wg.Wait()
	assert.NoError(t, runErr)
}

func TestServerDoubleStart(t *testing.T) {
	t.Parallel()

	port := getFreePort(t)
	addr := fmt.Sprintf("%s:%d", testHost, port)
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = srv.Start(ctx, testHandler())
	}()

	time.Sleep(50 * time.Millisecond)

	err := srv.Start(context.Background(), testHandler())
	require.Error(t, err)
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

	cancel()
	_ = srv.Stop()
	wg.Wait()
}

func TestServerBindFailure(t *testing.T) {
	t.Parallel()

	port := getFreePort(t)
	occupyPort(t, port)

	srv := server.New(fmt.Sprintf("%s:%d", testHost, port))

	err := srv.Start(context.Background(), testHandler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind")
}

func TestServerOnReady(t *testing.T) {
	t.Parallel()

	port := getFreePort(t)
	addr := fmt.Sprintf("%s:%d", testHost, port)

	readyCh := make(chan string, 1)
	srv := server.New(addr, server.WithOnReady(func(boundAddr string) {
		readyCh <- boundAddr
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = srv.Run(ctx, testHandler())()
	}()

	select {
	case boundAddr := <-readyCh:
		assert.True(t, strings.HasSuffix(boundAddr, fmt.Sprintf(":%d", port)))
	case <-time.After(2 * time.Second):
		t.Fatal("onReady callback never fired")
	}

	cancel()
	wg.Wait()
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	port := getFreePort(t)

	cfg := server.Config{
		Host:            testHost,
		Ports:           []int{port},
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     10 * time.Second,
		ShutdownTimeout: 1 * time.Second,
		MaxHeaderBytes:  1 << 16,
	}

	srv := server.NewFromConfig(cfg, port)
	assert.Equal(t, fmt.Sprintf("%s:%d", testHost, port), srv.Addr())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultConfig()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, server.DefaultCandidatePorts, cfg.Ports)
	assert.Equal(t, server.DefaultShutdownTimeout, cfg.ShutdownTimeout)
}
