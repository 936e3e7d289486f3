package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"btl-agent/config"
	httpLayer "btl-agent/http"
	"btl-agent/repository"
	"btl-agent/service"
)

func main() {
	cfg := config.Load()

	analysisRepo := repository.NewAnalysisRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		log.Printf("Using Redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	stampDutyService := service.NewStampDutyService()
	btlService := service.NewBTLService(stampDutyService, analysisRepo, cache)
	section24Service := service.NewSection24Service()
	riskService := service.NewRiskExtractionService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	yieldService := service.NewYieldService()
	analysisService := service.NewAnalysisService(btlService, section24Service, riskService, yieldService)

	stampDutyHandler := httpLayer.NewStampDutyHandler(stampDutyService)
	btlHandler := httpLayer.NewBTLHandler(btlService)
	section24Handler := httpLayer.NewSection24Handler(section24Service)
	analysisHandler := httpLayer.NewAnalysisHandler(analysisService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := mux.NewRouter()
	router.Handle(
		"/property/stamp-duty",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(stampDutyHandler.Calculate),
		),
	).Methods(http.MethodPost)

	router.Handle(
		"/property/btl-metrics",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(btlHandler.CalculateMetrics),
		),
	).Methods(http.MethodPost)

	router.Handle(
		"/property/section24",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(section24Handler.Calculate),
		),
	).Methods(http.MethodPost)

	router.Handle(
		"/property/analyse",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(analysisHandler.AnalyseProperty),
		),
	).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("btl-agent listening on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
