package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// Recovery recovers from panics and logs the error. A panic carrying
// domain.ErrInvariantViolation is reported to onFatal after the response is
// written; the process is expected to stop.
func Recovery(logger zerolog.Logger, onFatal func(error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, _ := rec.(error)
				fatal := err != nil && errors.Is(err, domain.ErrInvariantViolation)

				event := logger.Error()
				if fatal {
					event = logger.WithLevel(zerolog.FatalLevel)
				}
				event.
					Interface("error", rec).
					Str("stack", string(debug.Stack())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal server error"}`))

				if fatal && onFatal != nil {
					onFatal(err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
