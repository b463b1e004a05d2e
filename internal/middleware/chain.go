package middleware

import "net/http"

// Chain applies middleware in the order given, first one outermost
//
// Example:
//
//	handler := Chain(mux,
//	    RequestLogging,        // Executes first
//	    CSRFProtection,        // Executes second
//	    Session(authService),  // Executes third
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
