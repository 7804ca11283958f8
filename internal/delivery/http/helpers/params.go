package helpers

import (
	"fmt"
	"net/http"
	"strconv"
)

// PathID parses the named path value as a positive int64 id. On failure it
// writes a 400 JSON error and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
		return 0, false
	}
	return id, true
}

// QueryInt parses the named query parameter as an int. A missing parameter
// yields def; a malformed one writes a 400 JSON error and returns false.
func QueryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
		return 0, false
	}
	return v, true
}
