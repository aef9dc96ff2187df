// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http/httptest"
	"net/netip"
	"testing"
)

func TestClientIP_Resolve(t *testing.T) {
	proxies := NewClientIP([]netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("2001:db8:ffff::/48"),
	})

	testCases := []struct {
		name       string
		resolver   *ClientIP
		remoteAddr string
		xff        []string
		realIP     string
		expectedIP string
	}{
		{
			name:       "no trusted proxies ignores the header",
			resolver:   NewClientIP(nil),
			remoteAddr: "203.0.113.7:5000",
			xff:        []string{"198.51.100.1"},
			expectedIP: "203.0.113.7",
		},
		{
			name:       "nil resolver uses the peer",
			resolver:   nil,
			remoteAddr: "203.0.113.7:5000",
			xff:        []string{"198.51.100.1"},
			expectedIP: "203.0.113.7",
		},
		{
			name:       "untrusted peer ignores the header",
			resolver:   proxies,
			remoteAddr: "203.0.113.7:5000",
			xff:        []string{"198.51.100.1"},
			expectedIP: "203.0.113.7",
		},
		{
			name:       "trusted peer names the client",
			resolver:   proxies,
			remoteAddr: "10.0.0.1:5000",
			xff:        []string{"198.51.100.1"},
			expectedIP: "198.51.100.1",
		},
		{
			name:       "client-written hops left of the proxy entry are ignored",
			resolver:   proxies,
			remoteAddr: "10.0.0.1:5000",
			xff:        []string{"1.2.3.4, 198.51.100.1"},
			expectedIP: "198.51.100.1",
		},
		{
			name:       "trusted hops are skipped",
			resolver:   proxies,
			remoteAddr: "10.0.0.1:5000",
			xff:        []string{"198.51.100.1, 10.0.0.2"},
			expectedIP: "198.51.100.1",
		},
		{
			name:       "multiple header lines join in order",
			resolver:   proxies,
			remoteAddr: "10.0.0.1:5000",
			xff:        []string{"1.2.3.4", "198.51.100.1, 10.0.0.9"},
			expectedIP: "198.51.100.1",
		},
		{
			name:       "garbage hop falls back to the peer",
			resolver:   proxies,
			remoteAddr: "10.0.0.1:5000",
			xff:        []string{"not-an-ip"},
			expectedIP: "10.0.0.1",
		},
		{
			name:       "X-Real-IP from a trusted peer",
			resolver:   proxies,
			remoteAddr: "10.0.0.1:5000",
			realIP:     "198.51.100.9",
			expectedIP: "198.51.100.9",
		},
		{
			name:       "IPv4-mapped peer is matched against IPv4 ranges",
			resolver:   proxies,
			remoteAddr: "[::ffff:10.0.0.1]:5000",
			xff:        []string{"198.51.100.1"},
			expectedIP: "198.51.100.1",
		},
		{
			name:       "IPv6 proxy",
			resolver:   proxies,
			remoteAddr: "[2001:db8:ffff::1]:443",
			xff:        []string{"2001:db8:1::5"},
			expectedIP: "2001:db8:1::5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for _, line := range tc.xff {
				req.Header.Add("X-Forwarded-For", line)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}

			if got := tc.resolver.Resolve(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
