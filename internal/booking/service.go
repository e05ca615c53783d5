package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tidewater-dev/hotel-booking-backend/internal/metrics"
	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/dateutil"
	"github.com/tidewater-dev/hotel-booking-backend/internal/room"
)

// BookRequest carries the book-room stage submission. CheckIn and CheckOut
// are the dates resolved by the preceding find-room stage.
type BookRequest struct {
	RoomID    string
	GuestName string
	CheckIn   string
	CheckOut  string
}

type Service interface {
	// Search validates the candidate range and returns the catalog rooms
	// free for it, in catalog order.
	Search(ctx context.Context, checkIn, checkOut string) ([]room.Room, error)
	// Book validates the guest name and appends a pending booking.
	Book(ctx context.Context, req BookRequest) (*PendingBooking, error)
	// ListPending returns the stored pending bookings in insertion order.
	ListPending(ctx context.Context) ([]PendingBooking, error)
}

type service struct {
	rooms    room.Service
	bookings Repository
	store    Store
	log      zerolog.Logger
	now      dateutil.Clock

	// searchMu guards the in-flight flag: a second search submitted while
	// one is still running fails fast instead of racing it.
	searchMu  sync.Mutex
	searching bool

	// storeMu serializes the load-append-save cycle within this process.
	// Concurrent writers from other processes are not coordinated; the
	// store assumes a single user.
	storeMu sync.Mutex
}

func NewService(rooms room.Service, bookings Repository, store Store, log zerolog.Logger) Service {
	return &service{
		rooms:    rooms,
		bookings: bookings,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

func (s *service) Search(ctx context.Context, checkIn, checkOut string) ([]room.Room, error) {
	rng, err := ValidateFindRoom(checkIn, checkOut, dateutil.Today(s.now))
	if err != nil {
		metrics.IncSearch("invalid")
		return nil, err
	}

	if !s.beginSearch() {
		metrics.IncSearch("conflict")
		return nil, ErrSearchInFlight
	}
	defer s.endSearch()

	// The catalog is fetched first and the booking list only after it has
	// fully loaded; filtering needs both complete.
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		metrics.IncSearch("error")
		return nil, err
	}

	existing, err := s.bookings.List(ctx)
	if err != nil {
		metrics.IncSearch("error")
		return nil, ErrBookingsUnavailable
	}

	available := make([]room.Room, 0, len(rooms))
	for _, r := range rooms {
		if IsAvailable(r.ID, rng.CheckIn, rng.CheckOut, existing) {
			available = append(available, r)
		}
	}

	metrics.IncSearch("ok")
	s.log.Info().
		Str("check_in", rng.CheckIn).
		Str("check_out", rng.CheckOut).
		Int("available", len(available)).
		Int("catalog", len(rooms)).
		Msg("room search completed")

	return available, nil
}

func (s *service) beginSearch() bool {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()
	if s.searching {
		return false
	}
	s.searching = true
	return true
}

func (s *service) endSearch() {
	s.searchMu.Lock()
	s.searching = false
	s.searchMu.Unlock()
}

func (s *service) Book(ctx context.Context, req BookRequest) (*PendingBooking, error) {
	name, err := ValidateBookRoom(req.GuestName)
	if err != nil {
		metrics.IncBooking("invalid")
		return nil, err
	}

	pending := PendingBooking{
		ID:        uuid.NewString(),
		RoomID:    req.RoomID,
		GuestName: name,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		CreatedAt: s.now().UTC(),
	}

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	list, err := s.store.Load(ctx)
	if err != nil {
		metrics.IncBooking("error")
		return nil, ErrStoreFailed
	}

	list = append(list, pending)
	if err := s.store.Save(ctx, list); err != nil {
		metrics.IncBooking("error")
		return nil, ErrStoreFailed
	}

	metrics.IncBooking("ok")
	s.log.Info().
		Str("booking_id", pending.ID).
		Str("room_id", pending.RoomID).
		Msg("pending booking recorded")

	return &pending, nil
}

func (s *service) ListPending(ctx context.Context) ([]PendingBooking, error) {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	list, err := s.store.Load(ctx)
	if err != nil {
		return nil, ErrStoreFailed
	}
	return list, nil
}
