package server_test

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellserve/core/server"
)

const testHost = "127.0.0.1"

// getFreePort returns a free port for testing
func getFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", testHost+":0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

// occupyPort binds the port for the duration of the test.
func occupyPort(t *testing.T, port int) {
	t.Helper()
	ln, err := net.Listen("tcp", net.JoinHostPort(testHost, strconv.Itoa(port)))
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
}

func TestNegotiatePortFirstFree(t *testing.T) {
	t.Parallel()

	candidates := []int{getFreePort(t), getFreePort(t)}

	port, err := server.NegotiatePort(testHost, candidates)
	require.NoError(t, err)
	assert.Equal(t, candidates[0], port)
}

func TestNegotiatePortSkipsOccupied(t *testing.T) {
	t.Parallel()

	candidates := []int{getFreePort(t), getFreePort(t), getFreePort(t)}
	occupyPort(t, candidates[0])
	occupyPort(t, candidates[1])

	port, err := server.NegotiatePort(testHost, candidates)
	require.NoError(t, err)
	assert.Equal(t, candidates[2], port)
}

func TestNegotiatePortAllOccupied(t *testing.T) {
	t.Parallel()

	candidates := []int{getFreePort(t), getFreePort(t), getFreePort(t)}
	for _, p := range candidates {
		occupyPort(t, p)
	}

	_, err := server.NegotiatePort(testHost, candidates)
	require.Error(t, err)
	assert.ErrorIs(t, err, server.ErrNoPortAvailable)
}
