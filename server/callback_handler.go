package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jrsteele09/go-oauth-gateway/exchange"
)

// CallbackHandler receives the provider's authorization-code callback,
// exchanges the code for an access token, and redirects the browser to the
// admin application with the token in the URL fragment. The fragment keeps
// the token out of server logs and Referer headers on later navigation.
//
// Every path terminates in exactly one response, and no path issues more
// than one outbound call.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		state := r.URL.Query().Get("state")

		if code == "" {
			s.logger.Warn().Msg("callback received without a code parameter")
			http.Error(w, "Missing code parameter", http.StatusBadRequest)
			return
		}

		creds := exchange.Credentials{
			ClientID:     s.config.GetClientID(),
			ClientSecret: s.config.GetClientSecret(),
		}
		if !creds.Valid() {
			s.logger.Error().Msg("client credentials are not configured")
			http.Error(w, "Server is not configured for token exchange", http.StatusInternalServerError)
			return
		}

		result, err := s.exchanger.Exchange(r.Context(), creds, code)
		if err != nil {
			// Transport and decode faults stay server-side; the caller gets
			// a generic message only.
			s.logger.Error().Err(err).Msg("token exchange failed")
			http.Error(w, "Server error during token exchange", http.StatusInternalServerError)
			return
		}

		switch result.Kind {
		case exchange.KindProviderError:
			s.logger.Warn().Str("provider_error", result.Error).Msg("token exchange rejected by provider")
			http.Error(w, fmt.Sprintf("Token exchange rejected: %s", result.Message()), http.StatusBadRequest)
			return
		case exchange.KindMalformed:
			s.logger.Error().Msg("provider response carried no access token")
			http.Error(w, "Could not retrieve access token", http.StatusInternalServerError)
			return
		}

		if state == "" {
			s.logger.Warn().Msg("callback received without a state parameter, CSRF protection degraded")
		}

		location := fmt.Sprintf("%s://%s%s#%s",
			getScheme(r), r.Host, s.config.GetRedirectPath(), tokenFragment(result, state))
		http.Redirect(w, r, location, http.StatusFound)
	}
}

// tokenFragment builds the URL-encoded fragment consumed by the admin
// application. Field order matters to keep the fragment stable for the
// downstream parser: access_token, token_type, then the optional fields.
func tokenFragment(result exchange.Result, state string) string {
	pairs := []string{
		"access_token=" + url.QueryEscape(result.AccessToken),
		"token_type=" + url.QueryEscape(result.TokenType),
	}
	if result.ExpiresIn > 0 {
		pairs = append(pairs, "expires_in="+strconv.Itoa(result.ExpiresIn))
	}
	if state != "" {
		pairs = append(pairs, "state="+url.QueryEscape(state))
	}
	return strings.Join(pairs, "&")
}
