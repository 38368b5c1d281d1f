// Package problem writes the API's error responses: a JSON body of the form
// {"detail": "..."} with the appropriate status code, plus leveled request
// logging for 4xx/5xx outcomes.
package problem

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type Detail struct {
	Detail string `json:"detail"`
}

// Write sends {"detail": detail} with the given status. err, when non-nil, is
// logged but never leaked into the response body; detail is the contract
// message for the client.
func Write(w http.ResponseWriter, r *http.Request, status int, detail string, err error) {
	if r != nil {
		logger := zerolog.Ctx(r.Context())
		switch {
		case status >= 500:
			logger.Error().
				Err(err).
				Int("status", status).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg(detail)
		case status >= 400:
			logger.Warn().
				Err(err).
				Int("status", status).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg(detail)
		}
	}

	payload, marshalErr := json.Marshal(Detail{Detail: detail})
	if marshalErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
