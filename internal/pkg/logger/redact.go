package logger

import "strings"

// MaskSecret keeps at most the last four characters of a secret.
// Short secrets are fully masked.
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return "****" + secret[len(secret)-4:]
}
