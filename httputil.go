package staticfs

import (
	"errors"
	"net/http"
	"os"
)

// toHTTPStatus maps a filesystem error to the status code the
// client should see. Missing files are a 404, permission problems
// a 403 and everything unexpected a 500.
func toHTTPStatus(err error) int {
	if errors.Is(err, os.ErrNotExist) {
		return http.StatusNotFound
	}
	if errors.Is(err, os.ErrPermission) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func httpError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
