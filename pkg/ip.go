package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP tries to get the real user/client IP address, checking the
// X-Real-Ip and X-Forwarded-For headers before falling back to RemoteAddr.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	// X-Forwarded-For can hold a list of addresses, the client is the first
	if commaIndex := strings.Index(ipAddr, ","); commaIndex > 0 {
		ipAddr = strings.TrimSpace(ipAddr[:commaIndex])
	}

	if strings.Contains(ipAddr, ":") {
		host, _, err := net.SplitHostPort(ipAddr)
		if err != nil {
			return "", fmt.Errorf("split host and port from [%s]: %w", ipAddr, err)
		}
		return host, nil
	}

	return ipAddr, nil
}
