package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

// Serve runs handler on addr until ctx is cancelled, then shuts down,
// giving in-flight requests five seconds to finish.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("starting HTTP server at http://%s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Println("HTTP server stopped")
	return nil
}
