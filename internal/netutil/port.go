package netutil

import (
	"fmt"
	"net"
	"strconv"
)

// Valid TCP port bounds. Port 0 (kernel-assigned) is rejected: callers of this
// package ask about one specific port.
const (
	MinPort = 1
	MaxPort = 65535
)

// ValidatePort returns an error wrapping ErrInvalidPort if port lies outside
// [MinPort, MaxPort]. No socket is touched.
func ValidatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("port %d outside [%d, %d]: %w", port, MinPort, MaxPort, ErrInvalidPort)
	}
	return nil
}

// Address joins host and port into a dialable "host:port" string, bracketing
// IPv6 literals.
func Address(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
