package server

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tonghaoch/hello-cicd-go/internal/config"
	"github.com/tonghaoch/hello-cicd-go/internal/handler"
	appmw "github.com/tonghaoch/hello-cicd-go/internal/middleware"
)

// NewRouter builds the request router with all routes and middleware.
// It opens no sockets, so tests can drive it through httptest directly.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(appmw.RequestID)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.GetHead)
	r.Use(middleware.Recoverer)

	// Unknown methods on known paths get the same 404 as unknown paths.
	r.MethodNotAllowed(http.NotFound)

	// Routes
	r.Get("/", handler.Hello)
	r.Get("/health", handler.Health)

	return r
}

// New creates an HTTP server for cfg serving NewRouter. It does not bind.
func New(cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

// Run binds srv.Addr and serves until the server is closed. The startup
// line is logged only once the socket is bound.
func Run(srv *http.Server) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	attrs := []any{"address", ln.Addr().String()}
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		attrs = append(attrs, "port", tcp.Port)
	}
	slog.Info("server running", attrs...)

	return srv.Serve(ln)
}

// requestLogger is a simple request logging middleware.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
			"request_id", appmw.GetRequestID(r.Context()),
		)
	})
}
