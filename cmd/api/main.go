package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/careline/medichat/internal/config"
	"github.com/careline/medichat/internal/handler"
	"github.com/careline/medichat/internal/service/ai"
	"github.com/careline/medichat/internal/service/dialog"
	"github.com/careline/medichat/internal/service/places"
	"github.com/careline/medichat/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	sessions := session.NewMemoryStore()

	// The generation collaborator is optional at startup; turns that need it
	// fail per the error taxonomy instead of taking the process down.
	var generator dialog.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize generation service: %v", err)
		} else {
			generator = aiService
			log.Println("generation service initialized successfully")
		}
	} else {
		log.Println("generation credentials not configured, medication and general-information paths will be unavailable")
	}

	var locator dialog.Locator
	if cfg.Maps.Enabled() {
		placesLocator, err := places.NewLocator(cfg.Maps)
		if err != nil {
			log.Printf("warning: failed to initialize facility locator: %v", err)
		} else {
			locator = placesLocator
			log.Println("facility locator initialized successfully")
		}
	} else {
		log.Println("maps credentials not configured, facility lookups will degrade to placeholder replies")
	}

	engine := dialog.NewEngine(sessions, generator, locator)
	router := handler.NewRouter(engine)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("medichat backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
