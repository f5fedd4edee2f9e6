package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"

	"jobcard/internal/config"
	"jobcard/internal/httpx"
)

// Handler wraps h with the CORS policy of the capture front end.
func Handler(cfg config.ServerConfig, h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", httpx.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", "X-Report-URL", "X-Report-Storage-Error", httpx.RequestIDHeader},
		AllowCredentials: true,
	})
	return c.Handler(h)
}

func Start(ctx context.Context, cfg config.ServerConfig, handler http.Handler) error {
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(cfg, handler),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	return srv.Serve(ln)
}
