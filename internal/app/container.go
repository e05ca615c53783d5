package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tidewater-dev/hotel-booking-backend/internal/api"
	"github.com/tidewater-dev/hotel-booking-backend/internal/booking"
	"github.com/tidewater-dev/hotel-booking-backend/internal/feed"
	"github.com/tidewater-dev/hotel-booking-backend/internal/metrics"
	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/storage"
	"github.com/tidewater-dev/hotel-booking-backend/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	RoomsFeedURL    string
	BookingsFeedURL string
	FeedTimeout     time.Duration
	StorePath       string
	Logger          zerolog.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	metrics.Register()

	// Shared XML feed client
	feedClient := feed.NewClient(cfg.FeedTimeout, cfg.Logger)

	// Room module
	roomRepo := room.NewFeedRepository(feedClient, cfg.RoomsFeedURL)
	roomService := room.NewService(roomRepo)

	// Booking module
	bookingRepo := booking.NewFeedRepository(feedClient, cfg.BookingsFeedURL)
	store, err := storage.NewLocalStore(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	bookingService := booking.NewService(roomService, bookingRepo, store, cfg.Logger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		RoomService:    roomService,
		BookingService: bookingService,
	})

	return &Container{Router: router}, nil
}
