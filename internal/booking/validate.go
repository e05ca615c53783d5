package booking

import (
	"strings"

	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/fielderr"
)

// ValidateFindRoom applies the find-room stage rules to a candidate range.
// Both fields are checked independently, so a reply can carry a check-in and
// a check-out message at once; within a field the first failing rule wins.
// Dates must already be in canonical yyyy-mm-dd form (or empty when the
// guest left the selectors untouched).
func ValidateFindRoom(checkIn, checkOut, today string) (DateRange, error) {
	errs := fielderr.New()

	switch {
	case checkIn == "":
		errs.Add("check_in", "You must enter a check in date.")
	case checkIn < today:
		errs.Add("check_in", "You can't book in the past.")
	}

	switch {
	case checkOut == "":
		errs.Add("check_out", "You must enter a check out date.")
	case checkIn != "" && checkOut < checkIn:
		errs.Add("check_out", "You can't check out before you check in.")
	case checkIn != "" && checkOut == checkIn:
		errs.Add("check_out", "You must stay at least one night.")
	}

	if errs.Has() {
		return DateRange{}, errs
	}
	return DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// ValidateBookRoom applies the book-room stage rules and returns the guest
// name with surrounding whitespace removed.
func ValidateBookRoom(guestName string) (string, error) {
	name := strings.TrimSpace(guestName)
	if name == "" {
		errs := fielderr.New()
		errs.Add("guest_name", "You must enter a booking name")
		return "", errs
	}
	return name, nil
}
