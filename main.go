// File: bookerly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookerly/bot"
	"bookerly/config"
	"bookerly/cron"
	"bookerly/database"
	bookingRepo "bookerly/database/repository/booking"
	linkRepo "bookerly/database/repository/link"
	templateRepo "bookerly/database/repository/template"
	"bookerly/handlers"
	"bookerly/middleware"
	"bookerly/routes"
	"bookerly/services/availability"
	bookingSvc "bookerly/services/booking"
	linkSvc "bookerly/services/link"
	"bookerly/services/notify"
	templateSvc "bookerly/services/template"
	"bookerly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx := context.Background()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer database.Close(mongoClient)
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	cacheClient, err := utils.NewCacheClient()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer cacheClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	templates := templateRepo.NewMongoTemplateRepo(db)
	links := linkRepo.NewMongoLinkRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	if err := bookings.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// services.
	availabilityCache := &utils.AvailabilityCache{
		Client: cacheClient,
		TTL:    time.Duration(config.AppConfig.AvailabilityTTL) * time.Second,
	}
	availabilitySvc := &availability.DefaultAvailabilityService{
		Links:     links,
		Templates: templates,
		Bookings:  bookings,
		Clock:     availability.SystemClock(),
		Cache:     availabilityCache,
	}

	notifier := notify.NewAsynqNotifier()
	defer notifier.Close()

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:         bookings,
		Availability: availabilitySvc,
		Cache:        availabilityCache,
		Notifier:     notifier,
	}
	templateService := &templateSvc.DefaultTemplateService{Repo: templates}
	linkService := &linkSvc.DefaultLinkService{Repo: links, Templates: templates}

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Booking:      handlers.NewBookingHandler(bookingService),
		Template:     handlers.NewTemplateHandler(templateService),
		Link:         handlers.NewLinkHandler(linkService, bookings),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Notification worker.
	worker := cron.NewNotificationWorker(bookings, cron.LogSender{})
	go func() {
		if err := worker.Start(); err != nil {
			logger.Sugar().Fatalf("main: notification worker failed: %v", err)
		}
	}()

	// Telegram mini-bot, only when a token is configured.
	if token := config.AppConfig.BotToken; token != "" {
		tgBot, err := bot.NewBot(token, config.AppConfig.BotDebug)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize telegram bot: %v", err)
		}
		go func() {
			if err := tgBot.Start(); err != nil {
				logger.Sugar().Errorf("main: telegram bot stopped: %v", err)
			}
		}()
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	worker.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
