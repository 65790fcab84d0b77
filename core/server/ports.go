package server

import (
	"net"
	"strconv"
)

// DefaultCandidatePorts is the fixed ordered list of local ports to probe.
var DefaultCandidatePorts = []int{53472, 53247, 53274, 53427, 53724, 53742}

// NegotiatePort probes the candidate ports in order and returns the first
// one that can be bound. The probe binds and immediately releases, so the
// port can still be taken before the real bind happens; that check-then-use
// race is accepted as a best-effort strategy.
// Returns ErrNoPortAvailable when every candidate is taken.
func NegotiatePort(host string, candidates []int) (int, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidatePorts
	}

	for _, port := range candidates {
		if portAvailable(host, port) {
			return port, nil
		}
	}

	return 0, ErrNoPortAvailable
}

func portAvailable(host string, port int) bool {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}
