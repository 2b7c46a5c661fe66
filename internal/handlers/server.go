package handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	serverAddr string
	handler    http.Handler

	log interfaces.ILogger
}

func NewHTTPServer(serverAddr string, handler http.Handler, log interfaces.ILogger) *HTTPServer {
	return &HTTPServer{
		serverAddr: serverAddr,
		handler:    handler,
		log:        log,
	}
}

// Run serves until ctx is cancelled, then shuts the server down gracefully
func (s *HTTPServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.serverAddr)
	if err != nil {
		return fmt.Errorf("listener error %s %w", s.serverAddr, err)
	}

	return s.Serve(ctx, listener)
}

func (s *HTTPServer) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.log.Infof("http server is listening: %s", listener.Addr().String())

	serverErr := make(chan error, 1)

	go func() {
		serverErr <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			return err
		}
		s.log.Infof("http server closed: %s", s.serverAddr)
		return ctx.Err()
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

var _ interfaces.Runnable = new(HTTPServer)
