package session_test

import (
	"encoding/json"
	"net/http"
)

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}
