package server

import (
	"net/http"

	"github.com/google/uuid"
)

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

func (s *Server) APIMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	return []func(http.HandlerFunc) http.HandlerFunc{
		s.RecoverMiddleware,
		s.RequestLogMiddleware,
	}
}

// RequestLogMiddleware tags each request with an ID and logs method and path.
// Query parameters are deliberately not logged: the callback carries the
// authorization code.
func (s *Server) RequestLogMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		logger := s.logger.With().Str("request_id", requestID).Logger()
		logger.Info().Str("method", r.Method).Str("path", r.URL.Path).Msg("request received")
		next(w, r.WithContext(logger.WithContext(r.Context())))
	}
}

// RecoverMiddleware converts a handler panic into a 500 response instead of
// tearing down the connection.
func (s *Server) RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("recovered from handler panic")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}
