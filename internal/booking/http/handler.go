package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewater-dev/hotel-booking-backend/internal/booking"
	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/apperror"
	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/response"
)

var errBadBody = apperror.New(http.StatusBadRequest, "invalid request body")

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Search handles the find-room stage: validate the requested range and
// return the rooms available for it.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadBody)
		return
	}

	checkIn, checkOut := req.CheckIn(), req.CheckOut()

	rooms, err := h.service.Search(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSearchResponse(checkIn, checkOut, rooms))
}

// Create handles the book-room stage: validate the guest name and record a
// pending booking.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadBody)
		return
	}

	pending, err := h.service.Book(c.Request.Context(), booking.BookRequest{
		RoomID:    req.RoomID,
		GuestName: req.GuestName,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPendingBookingResponse(*pending))
}

// ListPending returns the stored pending bookings in insertion order.
func (h *Handler) ListPending(c *gin.Context) {
	list, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PendingBookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, NewPendingBookingResponse(b))
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}
