package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	srv *nethttp.Server
	log *logger.Logger
}

func NewServer(log *logger.Logger, addr string, handler nethttp.Handler) *Server {
	return &Server{
		srv: &nethttp.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
