package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders lists the proxy headers consulted by New when called
// without arguments, highest priority first.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the client IP from a request.
type Resolver struct {
	headers []string
}

// New creates a Resolver trusting the given headers in order. Calling New()
// with no arguments uses DefaultHeaders; passing an explicit empty list
// trusts only RemoteAddr.
func New(headers ...string) *Resolver {
	if headers == nil {
		headers = DefaultHeaders
	}
	h := make([]string, 0, len(headers))
	for _, name := range headers {
		if name = strings.TrimSpace(name); name != "" {
			h = append(h, http.CanonicalHeaderKey(name))
		}
	}
	return &Resolver{headers: h}
}

// IP returns the normalized client address, or "" when none is valid.
func (res *Resolver) IP(r *http.Request) string {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		// X-Forwarded-For style lists: take the first valid entry.
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Middleware stores the resolved address in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
	})
}

// RemoteIP returns the address of the direct peer, ignoring every header.
func RemoteIP(r *http.Request) string {
	return remoteOnly.IP(r)
}

var remoteOnly = New([]string{}...)

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
