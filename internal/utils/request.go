package utils

import (
	"encoding/json"
	"net/http"
)

// DecodeJSONRequest decodes the request body into dst and writes a 400
// response on failure. Callers should return immediately on error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
