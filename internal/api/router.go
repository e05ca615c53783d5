package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tidewater-dev/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/tidewater-dev/hotel-booking-backend/internal/booking/http"
	"github.com/tidewater-dev/hotel-booking-backend/internal/room"
	roomHttp "github.com/tidewater-dev/hotel-booking-backend/internal/room/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	RoomService    room.Service
	BookingService booking.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Recovery) and registers the search
// and booking routes alongside the health and metrics endpoints.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// The booking widget lives on another origin and calls this API with
	// cross-origin fetches.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize HTTP handlers for each module (injecting service dependencies).
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		roomHttp.RegisterRoutes(v1, roomHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
	}

	return r
}
