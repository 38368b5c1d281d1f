package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// queryToken reads the session token from the request. Tokens ride in the
// `token` query parameter on every protected call; there is no Authorization
// header in this API.
func queryToken(r *http.Request) string {
	return r.URL.Query().Get("token")
}
