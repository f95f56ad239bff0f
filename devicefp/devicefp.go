// Package devicefp derives a stable, non-cryptographic device identifier from
// request characteristics. The fingerprint softly binds a refresh token to the
// device that obtained it; it is a heuristic signal, never an authenticator.
package devicefp

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Fingerprint describes the requesting device.
type Fingerprint struct {
	OS       string
	Browser  string
	IPPrefix string
	Hash     string
}

// Extract derives a Fingerprint from the request headers and remote address.
func Extract(r *http.Request) Fingerprint {
	ua := r.UserAgent()

	fp := Fingerprint{
		OS:       parseOS(ua),
		Browser:  parseBrowser(ua),
		IPPrefix: truncateIP(ClientIP(r)),
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s", ua, fp.OS, fp.Browser, fp.IPPrefix)))
	fp.Hash = hex.EncodeToString(sum[:])[:16]

	return fp
}

// ClientIP returns the first X-Forwarded-For hop when present, otherwise the
// connection's remote address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// truncateIP zeroes the host portion of the address (/24 for IPv4, /48 for
// IPv6) so the fingerprint survives DHCP churn within a subnet.
func truncateIP(s string) string {
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}

	if v4 := ip.To4(); v4 != nil {
		return v4.Mask(net.CIDRMask(24, 32)).String()
	}

	return ip.Mask(net.CIDRMask(48, 128)).String()
}

func parseOS(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "Windows"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iPhone"), strings.Contains(ua, "iPad"):
		return "iOS"
	case strings.Contains(ua, "Mac OS X"), strings.Contains(ua, "Macintosh"):
		return "macOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return "unknown"
	}
}

func parseBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "Edg/"):
		return "Edge"
	case strings.Contains(ua, "OPR/"), strings.Contains(ua, "Opera"):
		return "Opera"
	case strings.Contains(ua, "Chrome/"):
		return "Chrome"
	case strings.Contains(ua, "Firefox/"):
		return "Firefox"
	case strings.Contains(ua, "Safari/"):
		return "Safari"
	default:
		return "unknown"
	}
}
