package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the error body returned by the API. Clients match on
// substrings of Detail, so the fixed phrases written by controllers must not
// be reworded.
// swagger:model ErrorDetail
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes payload as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONDetail writes an ErrorDetail body with the given status code.
func WriteJSONDetail(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, ErrorDetail{Detail: detail})
}
