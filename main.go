package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-product-reviews/internal/catalog"
	"go-product-reviews/internal/config"
	"go-product-reviews/internal/handler/api"
	"go-product-reviews/internal/logger"
	"go-product-reviews/internal/seeder"
	"go-product-reviews/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {

	cnf := config.LoadConfigOrPanic()
	logger.Setup(cnf.Log)
	gin.SetMode(cnf.Server.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	repos, err := store.Open(ctx, cnf)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cnf.Store.Driver).Msg("failed to open store")
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	svc := catalog.New(repos.Products, repos.Reviews, catalog.Options{
		ProductsPageSize: cnf.Catalog.ProductsPageSize,
		ReviewsPageSize:  cnf.Catalog.ReviewsPageSize,
		SearchLimit:      cnf.Catalog.SearchLimit,
	})
	seed := seeder.New(svc, cnf.Seeder.Concurrency, 0)

	srv := &http.Server{
		Addr:    ":" + cnf.Server.Port,
		Handler: api.NewRouter(api.New(svc, seed, cnf.Seeder.Count)),
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("driver", cnf.Store.Driver).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		select {
		case <-sigs:
			// Received a termination signal, continue to shutdown
		case <-gctx.Done():
			// the server stopped on its own
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cnf.Server.ShutdownTimeout)
		defer shutdownCancel()
		log.Info().Msg("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
