package routes

import (
	"net/http"
	"time"

	"servease/handlers"
	"servease/middleware"
	"servease/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and authentication endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.UserHandler.RegisterUserHandler)
		api.POST("/login", hb.UserHandler.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.UserHandler.GetMeHandler)
		api.PUT("/me", hb.UserHandler.UpdateUserHandler)
		api.PUT("/me/password", hb.UserHandler.UpdateUserPasswordHandler)
		api.POST("/logout", hb.UserHandler.LogoutHandler)
		api.DELETE("/me", hb.UserHandler.DeleteUserHandler)
	}
}

// RegisterServiceRoutes registers the public service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ServiceHandler.ListServicesHandler)
		api.GET("/:id", hb.ServiceHandler.GetServiceHandler)
	}
}

// RegisterBookingRoutes sets up the user-facing booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("", hb.BookingHandler.CreateBookingHandler)
		bookingGroup.GET("", hb.BookingHandler.ListMyBookingsHandler)
		bookingGroup.GET("/:id", hb.BookingHandler.GetBookingHandler)
		bookingGroup.DELETE("/:id", hb.BookingHandler.CancelBookingHandler)
		bookingGroup.POST("/:id/rating", hb.BookingHandler.RateBookingHandler)
	}
}

// RegisterChatbotRoutes registers the assistant endpoints. Auth is optional:
// anonymous callers still get greetings and the catalog, login-gated intents
// answer with a login prompt instead of a 401.
func RegisterChatbotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chatbot")
	{
		api.Use(middleware.OptionalAuthMiddleware(hb.UserRepo))
		api.POST("/message", hb.ChatbotHandler.ProcessMessageHandler)
		api.POST("/quick-book", hb.ChatbotHandler.QuickBookHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		adminGroup.GET("/dashboard", hb.AdminHandler.DashboardHandler)
		adminGroup.GET("/bookings", hb.AdminHandler.ListBookingsHandler)
		adminGroup.GET("/bookings/pending-count", hb.AdminHandler.PendingCountHandler)
		adminGroup.GET("/bookings/:id", hb.AdminHandler.GetBookingDetailsHandler)
		adminGroup.PATCH("/bookings/:id/status", hb.AdminHandler.UpdateBookingStatusHandler)
		adminGroup.GET("/users", hb.AdminHandler.GetAllUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status": "ok",
			"mongo":  status.Mongo,
			"redis":  status.Redis,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatbotRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
