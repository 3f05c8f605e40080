package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/saulo-duarte/trivia-api/internal/apierror"
	"github.com/saulo-duarte/trivia-api/internal/config"
)

// Recoverer turns a panic into the 500 JSON envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			config.WithContext(r.Context()).
				WithField("stack", string(debug.Stack())).
				Errorf("panic: %v", rec)
			apierror.Write(w, r, apierror.Internal(fmt.Errorf("panic: %v", rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
