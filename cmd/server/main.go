package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openremit/billpay-demo/internal/config"
	"github.com/openremit/billpay-demo/internal/handler"
	"github.com/openremit/billpay-demo/internal/middleware"
	"github.com/openremit/billpay-demo/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	checkoutSvc := service.NewCheckoutService(
		service.NewMethodService(),
		service.NewRateService(),
		service.NewPaymentService(),
		cfg.SessionTTL,
		cfg.SubmitTimeout,
	)
	selectionSvc := service.NewSelectionService(checkoutSvc, cfg.SessionTTL)

	healthHandler := handler.NewHealthHandler(selectionSvc, checkoutSvc)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(router, selectionSvc, checkoutSvc)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, selectionSvc *service.SelectionService, checkoutSvc *service.CheckoutService) {
	countryHandler := handler.NewCountryHandler()
	selectionHandler := handler.NewSelectionHandler(selectionSvc)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)
	trackingHandler := handler.NewTrackingHandler()

	api := router.Group("/api/v1")
	{
		api.GET("/countries", countryHandler.List)

		api.POST("/sessions", selectionHandler.Create)
		api.GET("/sessions/:id", selectionHandler.Get)
		api.PUT("/sessions/:id/country", selectionHandler.SelectCountry)
		api.POST("/sessions/:id/bills/:billID/toggle", selectionHandler.ToggleBill)
		api.POST("/sessions/:id/proceed", selectionHandler.Proceed)
		api.POST("/sessions/:id/pay-one", selectionHandler.PayOne)

		api.GET("/checkouts/:id", checkoutHandler.Get)
		api.PUT("/checkouts/:id/method", checkoutHandler.SelectMethod)
		api.PUT("/checkouts/:id/fields", checkoutHandler.SetField)
		api.POST("/checkouts/:id/submit", checkoutHandler.Submit)

		api.GET("/tracking/:id", trackingHandler.Get)
	}
}
