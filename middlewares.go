package staticfs

import (
	"net/http"

	"github.com/google/uuid"
)

// requestID tags every response with a unique id so independent
// requests can be told apart by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}
