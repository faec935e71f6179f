package netutil

import (
	"errors"
	"testing"
)

func TestValidatePort(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		port    int
		wantErr bool
	}{
		"zero":          {port: 0, wantErr: true},
		"negative":      {port: -1, wantErr: true},
		"lowest valid":  {port: 1, wantErr: false},
		"typical":       {port: 8080, wantErr: false},
		"highest valid": {port: 65535, wantErr: false},
		"above ceiling": {port: 65536, wantErr: true},
		"far above":     {port: 1 << 20, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePort(tc.port)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPort) {
					t.Errorf("ValidatePort(%d) = %v, want ErrInvalidPort", tc.port, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidatePort(%d) = %v, want nil", tc.port, err)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		host string
		port int
		want string
	}{
		"hostname":     {host: "localhost", port: 3000, want: "localhost:3000"},
		"ipv4 literal": {host: "127.0.0.1", port: 80, want: "127.0.0.1:80"},
		"ipv6 literal": {host: "::1", port: 8443, want: "[::1]:8443"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := Address(tc.host, tc.port); got != tc.want {
				t.Errorf("Address(%q, %d) = %q, want %q", tc.host, tc.port, got, tc.want)
			}
		})
	}
}
