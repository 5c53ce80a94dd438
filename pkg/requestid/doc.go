// Package requestid assigns every HTTP request an identifier, echoes it in
// the X-Request-ID response header and stores it in the request context.
//
// A well-formed incoming X-Request-ID (1-128 characters of [a-zA-Z0-9_-])
// is reused; anything else is replaced with a fresh UUID.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
