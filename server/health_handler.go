package server

import (
	"net/http"

	"github.com/jrsteele09/go-oauth-gateway/exchange"
)

const contentTypeJSON = "application/json; charset=utf-8"

// HealthHandler reports process liveness and whether the provider credentials
// are present, without echoing any configured value.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds := exchange.Credentials{
			ClientID:     s.config.GetClientID(),
			ClientSecret: s.config.GetClientSecret(),
		}

		w.Header().Set("Content-Type", contentTypeJSON)
		if !creds.Valid() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded","reason":"missing client credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
