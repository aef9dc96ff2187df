// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey  = errors.New("invalid admin key")
	ErrInvalidSignature = errors.New("invalid signature")
)

// NewSessionID creates a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// mac computes an HMAC-SHA256 of value under secret
// Uses URL-safe base64 and trims padding so it fits in a cookie
func mac(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// Sign appends an HMAC to value: "<value>.<mac>"
func Sign(value, secret string) string {
	return value + "." + mac(value, secret)
}

// Verify checks a value produced by Sign and returns the original value
func Verify(signed, secret string) (string, error) {
	i := strings.LastIndexByte(signed, '.')
	if i <= 0 || i == len(signed)-1 {
		return "", ErrInvalidSignature
	}
	value, sig := signed[:i], signed[i+1:]
	if !hmac.Equal([]byte(sig), []byte(mac(value, secret))) {
		return "", ErrInvalidSignature
	}
	return value, nil
}

// ValidateAdminKey compares a presented admin key against the configured one
// in constant time
func ValidateAdminKey(presented, expected string) error {
	if expected == "" || !hmac.Equal([]byte(presented), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
