// Package handshake reports the negotiated port to the parent process.
//
// The desktop shell that spawns the server passes an inherited pipe and
// names its file descriptor in the SHELLSERVE_IPC_FD environment variable.
// After a successful bind, the server writes a single JSON line
// {"port":<n>} to that pipe; the parent uses it exclusively to know which
// address to open its browser window against. No other messages are
// exchanged, and without the variable the handshake is skipped.
package handshake

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// EnvIPCFD names the inherited file descriptor for the parent channel.
const EnvIPCFD = "SHELLSERVE_IPC_FD"

type message struct {
	Port int `json:"port"`
}

// Writer returns the parent channel when the process has one.
// The second return value is false when no send capability exists.
func Writer() (io.WriteCloser, bool) {
	raw := os.Getenv(EnvIPCFD)
	if raw == "" {
		return nil, false
	}

	fd, err := strconv.Atoi(raw)
	if err != nil || fd < 0 {
		return nil, false
	}

	f := os.NewFile(uintptr(fd), "ipc")
	if f == nil {
		return nil, false
	}

	return f, true
}

// Notify writes the bound port as a single JSON line to w.
func Notify(w io.Writer, port int) error {
	if err := json.NewEncoder(w).Encode(message{Port: port}); err != nil {
		return fmt.Errorf("handshake: report port %d: %w", port, err)
	}
	return nil
}
