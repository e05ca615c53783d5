package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewater-dev/hotel-booking-backend/internal/feed"
)

func serveXML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFeedRepositoryList(t *testing.T) {
	srv := serveXML(t, `
		<bookings>
			<booking>
				<room>101</room>
				<checkin><day>10</day><month>1</month><year>2026</year></checkin>
				<checkout><day>15</day><month>1</month><year>2026</year></checkout>
			</booking>
			<booking>
				<room>102</room>
				<checkin><day>3</day><month>12</month><year>2026</year></checkin>
				<checkout><day>5</day><month>12</month><year>2026</year></checkout>
			</booking>
		</bookings>`)

	repo := NewFeedRepository(feed.NewClient(time.Second, zerolog.Nop()), srv.URL)

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, bookings, 2)
	// Single-digit day and month sub-fields come out zero-padded
	assert.Equal(t, Booking{RoomID: "101", CheckIn: "2026-01-10", CheckOut: "2026-01-15"}, bookings[0])
	assert.Equal(t, Booking{RoomID: "102", CheckIn: "2026-12-03", CheckOut: "2026-12-05"}, bookings[1])
}

func TestFeedRepositoryMissingSubFields(t *testing.T) {
	srv := serveXML(t, `
		<bookings>
			<booking>
				<room>101</room>
				<checkin><day>10</day><month>1</month></checkin>
				<checkout><day>15</day><month>1</month><year>2026</year></checkout>
			</booking>
			<booking>
				<checkin><day>1</day><month>2</month><year>2026</year></checkin>
				<checkout><day>2</day><month>2</month><year>2026</year></checkout>
			</booking>
		</bookings>`)

	repo := NewFeedRepository(feed.NewClient(time.Second, zerolog.Nop()), srv.URL)

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, bookings, 2)
	// Incomplete date degrades to an empty string instead of failing the parse
	assert.Equal(t, Booking{RoomID: "101", CheckIn: "", CheckOut: "2026-01-15"}, bookings[0])
	// Missing room identifier degrades the same way
	assert.Equal(t, Booking{RoomID: "", CheckIn: "2026-02-01", CheckOut: "2026-02-02"}, bookings[1])
}

func TestFeedRepositoryEmptyList(t *testing.T) {
	srv := serveXML(t, `<bookings></bookings>`)

	repo := NewFeedRepository(feed.NewClient(time.Second, zerolog.Nop()), srv.URL)

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
