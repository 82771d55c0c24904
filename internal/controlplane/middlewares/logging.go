package middlewares

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// WithLogging logs responses with a status code of 400 or above, with the
// endpoint's status code.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		loggedRW := &statusRecorder{ResponseWriter: rw, statusCode: http.StatusOK}
		next.ServeHTTP(loggedRW, r)

		if loggedRW.statusCode >= http.StatusBadRequest {
			log.Ctx(r.Context()).
				Warn().
				Int("statusCode", loggedRW.statusCode).
				Str("path", r.URL.Path).
				Msg("non-2xx status code response")
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
