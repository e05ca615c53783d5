package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrSearchInFlight      = apperror.New(http.StatusConflict, "a room search is already running")
	ErrBookingsUnavailable = apperror.New(http.StatusBadGateway, "booking list is unavailable")
	ErrStoreFailed         = apperror.New(http.StatusInternalServerError, "could not record the booking")
)

// Booking is an existing reservation from the external booking list. Dates
// are canonical yyyy-mm-dd strings, so string comparison orders them
// chronologically.
type Booking struct {
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// DateRange is a validated candidate stay: checkout strictly after checkin
// (one night minimum), checkin no earlier than today.
type DateRange struct {
	CheckIn  string
	CheckOut string
}

// PendingBooking is a booking confirmed by the guest but not yet persisted
// to any authoritative server-side store.
type PendingBooking struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	GuestName string    `json:"guest_name"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists the pending booking list wholesale. Implementations load
// and save the complete list; there is no partial update.
type Store interface {
	Load(ctx context.Context) ([]PendingBooking, error)
	Save(ctx context.Context, bookings []PendingBooking) error
}
