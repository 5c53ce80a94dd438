// Package jwt signs and verifies the compact HS256 tokens issued by the
// token service.
//
// A Signer turns a payload object into a token by injecting two claims, the
// absolute expiry instant (exp, unix seconds) and a freshly generated token
// identifier (jti), and signing the result with a shared secret. Verification
// is a pure function of the token string, the secret and the clock: it checks
// the three-segment structure, pins the algorithm to HS256, verifies the
// signature and rejects expired tokens. Revocation is deliberately not a
// concern of this package.
//
// Signing and parsing are delegated to github.com/golang-jwt/jwt/v5; payloads
// are carried as *payload.Object so that key order and integer precision
// survive a round trip.
//
// # Usage
//
//	signer, err := jwt.NewFromString(os.Getenv("JWT_SECRET"))
//	if err != nil {
//		// handle error
//	}
//
//	obj := payload.NewObject()
//	obj.Set("key", payload.String("test_key"))
//
//	token, err := signer.Sign(obj, time.Time{}) // zero expiry: now + lifetime
//
//	claims, err := signer.Verify(token)
//	switch {
//	case errors.Is(err, jwt.ErrMalformedToken):
//		// not header.claims.signature
//	case errors.Is(err, jwt.ErrExpiredToken):
//		// exp has passed
//	case errors.Is(err, jwt.ErrInvalidSignature):
//		// tampered, wrong secret, wrong algorithm or undecodable segment
//	}
//	jti, _ := jwt.TokenID(claims)
//
// # Error Handling
//
// ErrInvalidSegment, ErrUnexpectedAlgorithm and ErrInvalidClaims all wrap
// ErrInvalidSignature, so callers that only care about the error class can
// test for ErrInvalidSignature while still being able to tell them apart.
//
// Token extractors (BearerTokenExtractor, QueryTokenExtractor, ...) pull the
// raw token out of an HTTP request for the transport layer.
package jwt
