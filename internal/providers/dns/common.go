package dns

import (
	"net"
	"strings"
)

// GetFullDomain joins a subdomain and zone into a FQDN. The apex is written
// as the zone itself.
func GetFullDomain(subDomain, zone string) string {
	if subDomain == "" || subDomain == "@" {
		return zone
	}
	return subDomain + "." + zone
}

// GetSubDomain strips the zone suffix from a FQDN, yielding "" for the apex.
func GetSubDomain(fullDomain, zone string) string {
	if fullDomain == zone {
		return ""
	}
	suffix := "." + zone
	if strings.HasSuffix(fullDomain, suffix) {
		return strings.TrimSuffix(fullDomain, suffix)
	}
	return fullDomain
}

// IsRetryable reports whether a provider error is transient. Retrying is a
// transport concern; only read paths and the zone refresh are retried, never
// creates (they are not idempotent).
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if IsRetryable(e) {
				return true
			}
		}
	}

	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}

	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"timeout",
		"connection reset",
		"connection refused",
		"temporary failure",
		"rate limit",
		"too many requests",
		"service unavailable",
		"internal server error",
		"bad gateway",
		"gateway timeout",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}
