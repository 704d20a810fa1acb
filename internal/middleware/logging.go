package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger deja en el contexto un logger con el request_id (zerolog.Ctx)
// y registra una línea por request, con nivel según el status.
func RequestLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			l := base.With().Str("request_id", GetRequestID(r.Context())).Logger()
			r = r.WithContext(l.WithContext(r.Context()))

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				var e *zerolog.Event
				switch {
				case status >= 500:
					e = l.Error()
				case status >= 400:
					e = l.Warn()
				default:
					e = l.Info()
				}

				e.
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_ip", r.RemoteAddr).
					Int("status", status).
					Int("bytes", ww.BytesWritten()).
					Dur("latency", time.Since(start)).
					Msg("request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
