// Package tokens implements the token lifecycle: issuing signed, short-lived
// tokens for arbitrary JSON payloads, validating them, renewing them and
// revoking them before they expire.
//
// A token is checked by the same chain on every call:
//
//	well formed -> signature valid -> not expired -> not revoked
//
// The first failing check decides the error. Format, signature and expiry
// are pure functions of the token string and the shared secret; revocation
// is the only state and lives in a revocation.Store keyed by the token's
// jti, with entries that expire together with the token.
//
// # Usage
//
//	signer, err := jwt.NewFromString(secret)
//	if err != nil {
//		return err
//	}
//	store := revocation.NewMemoryStore()
//	defer store.Close()
//
//	svc, err := tokens.NewService(signer, store,
//		tokens.WithRenderer(qrcode.NewRenderer()),
//		tokens.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	token, err := svc.Create(ctx, payload.MustFromAny(map[string]any{"user_id": 42}))
//	ok := svc.Validate(ctx, token)       // true
//	renewed, err := svc.Renew(ctx, token) // token stays valid
//	err = svc.Invalidate(ctx, token)      // token is now revoked
//
// Validate only answers true or false. Inspect, Renew and Invalidate return
// the failure, which callers match with errors.Is against
// jwt.ErrMalformedToken, jwt.ErrInvalidSignature (and its variants),
// jwt.ErrExpiredToken and ErrRevokedToken.
//
// # HTTP
//
// NewRouter exposes the service as a JSON API:
//
//	POST   /tokens    {"token":{"payload":{...}}}   create, ?format=qr for a PNG
//	GET    /validate  ?token=...                    {"valid":bool,...}
//	POST   /renew     {"token":"..."}               renew, ?format=qr for a PNG
//	DELETE /tokens    {"token":"..."}               invalidate, 204
//
// Malformed requests and tokens answer 400. On create, renew and delete a
// token that is well formed but fails a later check answers 422. Validate is
// the exception: any failing token answers 200 with "valid":false and the
// reason, and only a missing token is a 400. Anything unexpected is a logged
// 500 on every route.
//
// Token routes share one rate limit per client address. Proxy headers name
// the client only when listed in TRUSTED_IP_HEADERS.
package tokens
