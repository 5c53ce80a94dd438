// Package handler provides type-safe HTTP request handling for JSON APIs.
//
// Handlers are plain generic functions that receive a bound request value
// and return a Response:
//
//	type RenewRequest struct {
//		Token string `json:"token" query:"token"`
//	}
//
//	func renew(ctx handler.Context, req RenewRequest) handler.Response {
//		token, err := svc.Renew(ctx, req.Token)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(map[string]string{"token": token})
//	}
//
//	r.Post("/renew", handler.Wrap(renew,
//		handler.WithBinders[handler.Context, RenewRequest](binder.Query(), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, RenewRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(data)                       // 200 with {"data": ...}
//	handler.JSON(data, WithJSONStatus(201))  // custom status
//	handler.JSONError(err)                   // {"error": {"code", "message"}}
//	handler.Error(err)                       // hands err to the ErrorHandler
//	handler.Blob("image/png", png)           // raw bytes
//	handler.Empty()                          // 204
//
// # Errors
//
// Binding failures, render failures and Error responses are passed to the
// ErrorHandler.
// NewErrorHandler writes the JSON error envelope, mapping HTTPError values
// to their status code, binder errors to 400 and everything else to 500.
// Client errors are logged at warn level, server errors at error level,
// both with the request id.
package handler
