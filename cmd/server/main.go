package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nomnomnow/backend/api"
	"github.com/nomnomnow/backend/config"
	"github.com/nomnomnow/backend/picker"
	"github.com/nomnomnow/backend/places"
	"github.com/nomnomnow/backend/store"
)

func main() {
	cfg := config.LoadConfig()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(cfg.Postgres.ConnStr())
	if err != nil {
		log.Fatal(err)
	}

	model, err := picker.NewOpenAIModel(cfg.LLM.BaseURL, cfg.LLM.Token, cfg.LLM.Model)
	if err != nil {
		log.Fatal(err)
	}

	pickerClient := picker.NewClient(model, cfg.LLM.MaxTokens)
	placesClient := places.NewClient(cfg.Places.APIKey, cfg.Places.BaseURL)

	server := api.New(cfg, st, pickerClient, placesClient)

	httpServer := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: server.Handler(),
	}

	group := errgroup.Group{}
	errChan := make(chan error)

	group.Go(func() error {
		slog.Info("Starting server", "address", cfg.Server.Address())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	go func() {
		errChan <- group.Wait()
	}()

	select {
	case <-shutdown:
		slog.Info("Shutting down")
	case err := <-errChan:
		slog.Info("Shutting down due to error", "error", err)
	}

	stopCtx, stop := context.WithTimeout(ctx, 10*time.Second)
	defer stop()

	if err := httpServer.Shutdown(stopCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}
