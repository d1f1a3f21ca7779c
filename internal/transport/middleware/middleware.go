// Package middleware holds the HTTP middleware mounted by the router.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It is assignable to the func type chi's
// Use and With accept.
type Middleware func(http.Handler) http.Handler
