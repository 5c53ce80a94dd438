// Package clientip resolves the originating client address of an HTTP
// request when the service runs behind reverse proxies.
//
// A Resolver checks a list of proxy headers in order and falls back to
// RemoteAddr. The default list is CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For (first valid entry) and X-Real-IP. Deployments that are
// reachable directly should pass an empty list so spoofed headers are
// ignored:
//
//	r.Use(clientip.New().Middleware)              // behind a proxy
//	r.Use(clientip.New([]string{}...).Middleware) // exposed directly
//
// Downstream code reads the resolved address with FromContext. RemoteIP
// returns the direct peer address for code running outside the middleware.
package clientip
