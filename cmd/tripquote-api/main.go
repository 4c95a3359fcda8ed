// README: API server entrypoint; wires config, stores, AI gateway, and routes.
package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripquote/internal/ai"
	"tripquote/internal/config"
	"tripquote/internal/http"
	"tripquote/internal/infra"
	"tripquote/internal/logging"
	"tripquote/internal/maps"
	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/itinerary"
	"tripquote/internal/modules/quotation"
	"tripquote/internal/render"
	"tripquote/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal("postgres", zap.Error(err))
	}
	defer db.Close()

	rdb := infra.NewRedis(cfg.Redis.Addr)
	defer rdb.Close() //nolint:errcheck

	var places *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		places, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Warn("maps disabled", zap.Error(err))
			places = nil
		}
	}

	var uploads *storage.Client
	if cfg.Storage.SupabaseURL != "" && cfg.Storage.SupabaseKey != "" {
		uploads = storage.NewClient(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket)
	} else {
		log.Info("object storage disabled; set SUPABASE_URL and SUPABASE_KEY to enable uploads")
	}

	gateway := ai.NewGateway(log)
	renderer := render.NewRenderer(cfg.Assets.Dir, log)

	enquiries := enquiry.NewService(enquiry.NewStore(db))
	itineraries := itinerary.NewService(gateway, itinerary.NewStore(db), places, log)

	pipeline := quotation.NewPipeline(gateway, renderer, log)
	quotations := quotation.NewService(
		pipeline,
		quotation.NewStore(db),
		quotation.NewDocStore(rdb),
		uploads,
		nil, // no DOCX converter bundled with the server build
		log,
	)

	router := http.NewRouter(http.Services{
		Enquiries:   enquiries,
		Itineraries: itineraries,
		Quotations:  quotations,
		AIDefaults: ai.Options{
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
		},
	}, log)

	srv := &nethttp.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
