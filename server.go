package staticfs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/exp/slog"
)

const shutdownTimeout = 5 * time.Second

// Server runs an HTTPHandler on a configured port until the
// context it was started with is canceled.
type Server struct {
	cfg     Config
	handler http.Handler
	logger  *slog.Logger
}

func NewServer(cfg Config, h http.Handler) *Server {
	return &Server{
		cfg:     cfg,
		handler: h,
		logger:  slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

// ListenAndServe binds the configured port, announces the served
// address and directory on stdout and serves until ctx is
// canceled. A failed bind is returned immediately.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	fmt.Printf("Serving at %s\n", s.cfg.URL())
	fmt.Printf("Directory: %s\n", s.cfg.Root)
	return s.Serve(ctx, ln)
}

// Serve serves on the given listener until ctx is canceled, then
// shuts down gracefully and returns nil. The listener is closed
// when Serve returns.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.handler}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "addr", ln.Addr().String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
