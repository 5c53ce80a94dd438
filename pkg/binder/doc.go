// Package binder decodes HTTP request data into Go structs.
//
// Two binders are provided:
//
//   - JSON decodes an application/json body in strict mode (unknown fields
//     are rejected) with a 1MB size limit.
//   - Query fills fields tagged `query:"name"` from the URL query string.
//
// Both return a func(r *http.Request, v any) error that plugs into
// handler.WithBinders. Binders are applied in order, so a later binder
// overrides fields set by an earlier one:
//
//	type RenewRequest struct {
//		Token  string `json:"token" query:"token"`
//		Format string `json:"format" query:"format"`
//	}
//
//	r.Post("/renew", handler.Wrap(renew,
//		handler.WithBinders[handler.Context, RenewRequest](binder.Query(), binder.JSON()),
//	))
//
// A binder that has nothing to read returns ErrBinderNotApplicable and is
// skipped by handler.Wrap. JSON does this for requests without a body, which
// lets the same endpoint accept either a JSON body or query parameters.
//
// All failures wrap one of the sentinel errors in errors.go and can be
// tested with errors.Is.
package binder
