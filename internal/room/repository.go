package room

import (
	"context"
	"encoding/xml"

	"github.com/tidewater-dev/hotel-booking-backend/internal/feed"
)

// Repository loads the room catalog.
type Repository interface {
	// List returns all catalog rooms in document order.
	List(ctx context.Context) ([]Room, error)
}

// catalogDocument mirrors the catalog feed:
//
//	<rooms>
//	  <room><id>101</id><type>Double</type><price>120.00</price></room>
//	  ...
//	</rooms>
//
// Missing sub-elements decode to empty strings; a malformed record never
// fails the document.
type catalogDocument struct {
	XMLName xml.Name `xml:"rooms"`
	Rooms   []Room   `xml:"room"`
}

type feedRepository struct {
	client *feed.Client
	url    string
}

// NewFeedRepository returns a Repository backed by the catalog XML feed.
func NewFeedRepository(client *feed.Client, url string) Repository {
	return &feedRepository{client: client, url: url}
}

func (r *feedRepository) List(ctx context.Context) ([]Room, error) {
	var doc catalogDocument
	if err := r.client.Fetch(ctx, "rooms", r.url, &doc); err != nil {
		return nil, err
	}
	return doc.Rooms, nil
}
