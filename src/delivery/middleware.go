package delivery

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Blackdeer1524/SchemaCatalog/src"
)

const requestIDHeader = "X-Request-Id"

// requestID tags every response with a request id, generating one when the
// client did not send its own.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}

		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r)
	})
}

func requestLog(log src.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debugf(
				"%s %s request_id=%s",
				r.Method,
				r.URL.Path,
				r.Header.Get(requestIDHeader),
			)

			next.ServeHTTP(w, r)
		})
	}
}
