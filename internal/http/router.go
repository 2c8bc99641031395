package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "github.com/Haseem12/ArewaRide/internal/config"
	h "github.com/Haseem12/ArewaRide/internal/http/handlers"
	"github.com/Haseem12/ArewaRide/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Route picker
		api.GET("/cities", h.GetCities)
		api.GET("/schedules", h.GetSchedules)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.Use(middleware.Auth(h.JWTSecret()))
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.GET("/:id/e-ticket", h.GetBookingETicketPDF)
	}

	return r
}
