// Package server exposes the pokedex and the moveset resolver over HTTP and
// websockets.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/notjagan/movedex/pkg/config"
	"github.com/notjagan/movedex/pkg/model"
	"github.com/notjagan/movedex/pkg/moveset"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	config   config.ServerConfig
	model    *model.Model
	resolver *moveset.Resolver
}

// New wires a server around a model and a resolver built from the same
// database. The resolver is shared by every request.
func New(cfg config.ServerConfig, mdl *model.Model, resolver *moveset.Resolver) *Server {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = config.Default().Server.PageLimit
	}

	return &Server{
		config:   cfg,
		model:    mdl,
		resolver: resolver,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /api/types", s.types)
	mux.HandleFunc("GET /api/items", s.items)
	mux.HandleFunc("GET /api/pokemon", s.listPokemon)
	mux.HandleFunc("GET /api/pokemon/{key}", s.pokemon)
	mux.HandleFunc("GET /api/pokemon/{key}/moveset", s.moveset)
	mux.HandleFunc("GET /api/pokemon/{key}/attacks", s.attacks)
	mux.HandleFunc("GET /api/pokemon/{key}/matchups", s.matchups)
	mux.HandleFunc("GET /ws/moveset", s.movesetSocket)

	return requestID(logRequests(cors(s.config.CORSOrigin, mux)))
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.config.Addr,
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	log.Printf("Serving Pokedex API on %s.", s.config.Addr)

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error while serving HTTP: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down.")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}
