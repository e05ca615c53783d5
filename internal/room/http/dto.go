package http

import "github.com/tidewater-dev/hotel-booking-backend/internal/room"

// RoomResponse is one catalog room as served to clients.
type RoomResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Price string `json:"price"`
}

func NewRoomResponse(r room.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Type: r.Type, Price: r.Price}
}
