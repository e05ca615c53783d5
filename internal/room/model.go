package room

import (
	"net/http"

	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/apperror"
)

var ErrCatalogUnavailable = apperror.New(http.StatusBadGateway, "room catalog is unavailable")

// Room is one bookable hotel room from the catalog. Price stays a decimal
// string exactly as the catalog publishes it; nothing in this flow does
// arithmetic on it.
type Room struct {
	ID    string `xml:"id" json:"id"`
	Type  string `xml:"type" json:"type"`
	Price string `xml:"price" json:"price"`
}

// Label is the display entry shown in the room picker.
func (r Room) Label() string {
	return r.ID + ": " + r.Price
}
