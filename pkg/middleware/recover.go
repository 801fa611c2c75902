package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/merchstore/merchstore/pkg/apperr"
	"github.com/merchstore/merchstore/pkg/logger"
	"github.com/merchstore/merchstore/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and returns a 500 to the client. Wire it outside the handlers it protects.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Error(w, http.StatusInternalServerError, apperr.CodeInternal, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
