package jwt

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc pulls a raw token string out of an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// BearerTokenExtractor reads "Authorization: Bearer <token>".
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}

	return strings.TrimSpace(token), nil
}

// QueryTokenExtractor reads the token from the named query parameter.
func QueryTokenExtractor(param string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := strings.TrimSpace(r.URL.Query().Get(param))
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// HeaderTokenExtractor reads the token from a custom header.
func HeaderTokenExtractor(header string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := strings.TrimSpace(r.Header.Get(header))
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// ChainExtractors tries each extractor in order and returns the first token found.
func ChainExtractors(extractors ...TokenExtractorFunc) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		for _, extract := range extractors {
			if token, err := extract(r); err == nil {
				return token, nil
			}
		}
		return "", ErrMissingToken
	}
}
