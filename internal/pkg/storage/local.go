// Package storage persists the pending booking list on the local file
// system. The list is read and written wholesale as one JSON document,
// mirroring the client-side record the booking widget keeps per profile;
// authoritative server-side persistence belongs to a later phase.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidewater-dev/hotel-booking-backend/internal/booking"
)

// LocalStore implements booking.Store over a single JSON file.
type LocalStore struct {
	path string
}

// NewLocalStore creates the store's directory if needed and returns a store
// writing to path.
func NewLocalStore(path string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &LocalStore{path: path}, nil
}

// Load reads the full pending booking list. A store that has never been
// written loads as an empty list.
func (s *LocalStore) Load(ctx context.Context) ([]booking.PendingBooking, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []booking.PendingBooking{}, nil
		}
		return nil, fmt.Errorf("read pending bookings: %w", err)
	}

	var list []booking.PendingBooking
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode pending bookings: %w", err)
	}
	return list, nil
}

// Save replaces the stored list. The write goes through a temp file and a
// rename so a crash mid-write cannot leave a truncated document.
func (s *LocalStore) Save(ctx context.Context, list []booking.PendingBooking) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pending bookings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write pending bookings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace pending bookings: %w", err)
	}
	return nil
}
