package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/response"
	"github.com/tidewater-dev/hotel-booking-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

// List serves the raw room catalog in document order.
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, NewRoomResponse(r))
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}
