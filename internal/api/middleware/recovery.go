package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/mkowalczyk/lullaby/pkg/problem"
)

// Recovery turns handler panics into a 500 problem+json response
// instead of tearing down the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic on %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
