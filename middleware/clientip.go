// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// GetClientIP returns the direct peer of r without its port
func GetClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ClientIP names the browser behind a request. Forwarding headers are only
// believed when the direct peer is a trusted proxy.
type ClientIP struct {
	trusted []netip.Prefix
}

func NewClientIP(trusted []netip.Prefix) *ClientIP {
	return &ClientIP{trusted: trusted}
}

func (c *ClientIP) isTrusted(addr netip.Addr) bool {
	for _, p := range c.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// Resolve walks X-Forwarded-For from the nearest hop outwards and returns
// the first address that is not a trusted proxy. Anything to the left of
// that address was written by the client and is ignored.
func (c *ClientIP) Resolve(r *http.Request) string {
	peer := GetClientIP(r)
	if c == nil || len(c.trusted) == 0 {
		return peer
	}
	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !c.isTrusted(peerAddr.Unmap()) {
		return peer
	}

	hops := forwardedFor(r)
	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(hops[i])
		if err != nil {
			return peer
		}
		addr = addr.Unmap()
		if !c.isTrusted(addr) {
			return addr.String()
		}
	}

	if len(hops) == 0 {
		if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
			return addr.Unmap().String()
		}
	}
	return peer
}

// forwardedFor flattens every X-Forwarded-For line into hops, client first
func forwardedFor(r *http.Request) []string {
	var hops []string
	for _, line := range r.Header.Values("X-Forwarded-For") {
		for _, hop := range strings.Split(line, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}
