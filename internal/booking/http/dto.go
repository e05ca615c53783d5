package http

import (
	"time"

	"github.com/tidewater-dev/hotel-booking-backend/internal/booking"
	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/dateutil"
	"github.com/tidewater-dev/hotel-booking-backend/internal/room"
)

// SearchRequest carries the six date selectors of the find-room stage. The
// parts arrive as the raw selector values; assembly into canonical form and
// all business validation happen downstream, so an untouched selector shows
// up as a missing date, not a binding failure.
type SearchRequest struct {
	CheckInDay    string `json:"check_in_day"`
	CheckInMonth  string `json:"check_in_month"`
	CheckInYear   string `json:"check_in_year"`
	CheckOutDay   string `json:"check_out_day"`
	CheckOutMonth string `json:"check_out_month"`
	CheckOutYear  string `json:"check_out_year"`
}

// CheckIn resolves the check-in selectors to yyyy-mm-dd, or "" when any
// part is missing.
func (r SearchRequest) CheckIn() string {
	return assemble(r.CheckInDay, r.CheckInMonth, r.CheckInYear)
}

// CheckOut resolves the check-out selectors to yyyy-mm-dd, or "" when any
// part is missing.
func (r SearchRequest) CheckOut() string {
	return assemble(r.CheckOutDay, r.CheckOutMonth, r.CheckOutYear)
}

func assemble(day, month, year string) string {
	if day == "" || month == "" || year == "" {
		return ""
	}
	return dateutil.FormatParts(day, month, year)
}

// RoomResponse is one selectable room in the search result. Label is the
// display entry for the room picker.
type RoomResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Price string `json:"price"`
	Label string `json:"label"`
}

func NewRoomResponse(r room.Room) RoomResponse {
	return RoomResponse{
		ID:    r.ID,
		Type:  r.Type,
		Price: r.Price,
		Label: r.Label(),
	}
}

// SearchResponse echoes the resolved dates so the book-room stage can carry
// them forward, alongside the available rooms in catalog order.
type SearchResponse struct {
	CheckIn  string         `json:"check_in"`
	CheckOut string         `json:"check_out"`
	Rooms    []RoomResponse `json:"rooms"`
}

func NewSearchResponse(checkIn, checkOut string, rooms []room.Room) SearchResponse {
	items := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, NewRoomResponse(r))
	}
	return SearchResponse{CheckIn: checkIn, CheckOut: checkOut, Rooms: items}
}

// CreateBookingRequest carries the book-room stage submission; the dates are
// the ones resolved by the search stage.
type CreateBookingRequest struct {
	RoomID    string `json:"room_id"`
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

type PendingBookingResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	GuestName string    `json:"guest_name"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPendingBookingResponse(b booking.PendingBooking) PendingBookingResponse {
	return PendingBookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		GuestName: b.GuestName,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		CreatedAt: b.CreatedAt,
	}
}
