package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains
// in-flight requests and stops the background components passed as
// stoppers (MCP transport, scheduler).
func (app *Application) Serve(mux *http.ServeMux, stoppers ...func(context.Context) error) error {
	srv := &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	shutdownErr := make(chan error)

	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		s := <-shutdown
		log.Printf("shutting down server with signal %v", s)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			shutdownErr <- err
			return
		}

		log.Println("stopping background components...")
		for _, stop := range stoppers {
			if err := stop(ctx); err != nil {
				log.Printf("shutdown: %v", err)
			}
		}
		shutdownErr <- nil
	}()

	log.Printf("starting server on %v", app.Config.HTTPPort)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	log.Printf("stopped server %v", app.Config.HTTPPort)

	return nil
}
