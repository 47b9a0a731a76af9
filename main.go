// File: servease/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servease/config"
	"servease/database"
	bookingRepoPkg "servease/database/repository/booking"
	serviceRepoPkg "servease/database/repository/service"
	userRepoPkg "servease/database/repository/user"
	"servease/handlers"
	"servease/middleware"
	"servease/routes"
	"servease/services/admin"
	"servease/services/booking"
	"servease/services/catalog"
	"servease/services/chatbot"
	"servease/services/user"
	"servease/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: serviceRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Services: serviceRepo,
	}
	chatbotService := chatbot.NewDefaultChatbotService(serviceRepo, bookingRepo)
	adminService := &admin.DefaultAdminService{
		Users:    userRepo,
		Services: serviceRepo,
		Bookings: bookingRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:       userRepo,
		UserHandler:    handlers.NewUserHandler(userService),
		ServiceHandler: handlers.NewServiceHandler(catalogService),
		BookingHandler: handlers.NewBookingHandler(bookingService, userService),
		AdminHandler:   handlers.NewAdminHandler(adminService, userService),
		ChatbotHandler: handlers.NewChatbotHandler(chatbotService, userService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
