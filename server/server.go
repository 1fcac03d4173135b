package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-oauth-gateway/exchange"
	"github.com/jrsteele09/go-oauth-gateway/internal/config"
	"github.com/rs/zerolog"
)

// Exchanger performs the outbound code-for-token exchange against the
// provider's token endpoint.
type Exchanger interface {
	Exchange(ctx context.Context, creds exchange.Credentials, code string) (exchange.Result, error)
}

// Server hosts the gateway's HTTP surface: the provider callback and a
// liveness endpoint. It holds no per-request state; the only cross-request
// data is the read-only configuration.
type Server struct {
	env       string
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	exchanger Exchanger
	logger    zerolog.Logger
}

func New(config config.Config, exchanger Exchanger, logger zerolog.Logger) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		config:    config,
		exchanger: exchanger,
		logger:    logger,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
