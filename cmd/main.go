package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"travel-explorer-service/internal/app/config"
	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/app/endpoints"
	"travel-explorer-service/internal/app/service"
	"travel-explorer-service/internal/app/transport"
	"travel-explorer-service/internal/pkg/aviationstack"
	"travel-explorer-service/internal/pkg/cache"
	"travel-explorer-service/internal/pkg/demodata"
	"travel-explorer-service/internal/pkg/logger"
	"travel-explorer-service/internal/pkg/trip"
)

func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	flightClient := aviationstack.NewClient(aviationstack.Config{
		BaseURL:      cfg.Aviationstack.APIURL,
		APIKey:       cfg.Aviationstack.APIKey,
		Timeout:      cfg.Aviationstack.Timeout,
		RateLimitRPS: cfg.Aviationstack.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
	})

	// a misconfigured API degrades every flight lookup to demo data, make
	// that visible at startup
	if err := flightClient.Validate(); err != nil {
		slog.ErrorContext(ctx, "flight API not configured, lookups will serve demo data",
			slog.String("error", err.Error()))
	}

	generator := demodata.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	flightService := service.NewFlightService(
		flightClient,
		cache.NewStore[[]dto.FlightRecord](cfg.Cache.TTL),
		generator,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	hotelService := service.NewHotelService(
		cache.NewStore[[]dto.HotelRecord](cfg.Cache.TTL),
		generator,
	)

	tripService := service.NewTripService(trip.NewStore(redisClient), cfg.Trip.TTL)

	return endpoints.Endpoints{
		Flight: endpoints.MakeFlightEndpoint(flightService),
		Hotel:  endpoints.MakeHotelEndpoint(hotelService),
		Trip:   endpoints.MakeTripEndpoint(tripService),
	}
}
