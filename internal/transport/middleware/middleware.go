// Package middleware holds the HTTP middleware shared by every route.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. It is assignable to
// chi's middleware signature, so values can be passed to Router.Use directly.
type Middleware func(http.Handler) http.Handler
