package booking

import (
	"context"
	"encoding/xml"

	"github.com/tidewater-dev/hotel-booking-backend/internal/feed"
	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/dateutil"
)

// Repository loads the list of existing bookings.
type Repository interface {
	// List returns all known bookings in document order.
	List(ctx context.Context) ([]Booking, error)
}

// The booking feed carries each date as separate day/month/year
// sub-elements:
//
//	<bookings>
//	  <booking>
//	    <room>101</room>
//	    <checkin><day>10</day><month>1</month><year>2026</year></checkin>
//	    <checkout><day>15</day><month>1</month><year>2026</year></checkout>
//	  </booking>
//	</bookings>
type bookingsDocument struct {
	XMLName  xml.Name        `xml:"bookings"`
	Bookings []bookingRecord `xml:"booking"`
}

type bookingRecord struct {
	Room     string     `xml:"room"`
	CheckIn  dateRecord `xml:"checkin"`
	CheckOut dateRecord `xml:"checkout"`
}

type dateRecord struct {
	Day   string `xml:"day"`
	Month string `xml:"month"`
	Year  string `xml:"year"`
}

// canonical assembles the yyyy-mm-dd form. A record with any sub-field
// missing yields an empty date rather than failing the parse; such entries
// simply never match an overlap test.
func (d dateRecord) canonical() string {
	if d.Day == "" || d.Month == "" || d.Year == "" {
		return ""
	}
	return dateutil.FormatParts(d.Day, d.Month, d.Year)
}

type feedRepository struct {
	client *feed.Client
	url    string
}

// NewFeedRepository returns a Repository backed by the bookings XML feed.
func NewFeedRepository(client *feed.Client, url string) Repository {
	return &feedRepository{client: client, url: url}
}

func (r *feedRepository) List(ctx context.Context) ([]Booking, error) {
	var doc bookingsDocument
	if err := r.client.Fetch(ctx, "bookings", r.url, &doc); err != nil {
		return nil, err
	}

	bookings := make([]Booking, 0, len(doc.Bookings))
	for _, rec := range doc.Bookings {
		bookings = append(bookings, Booking{
			RoomID:   rec.Room,
			CheckIn:  rec.CheckIn.canonical(),
			CheckOut: rec.CheckOut.canonical(),
		})
	}
	return bookings, nil
}
