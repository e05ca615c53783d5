package booking

// IsAvailable reports whether the room is free for the candidate range,
// given the full list of existing bookings. Intervals are half-open: an
// existing checkout on the candidate's checkin day does not conflict, so
// back-to-back stays are allowed.
//
// The scan is linear and order-independent; the list is small enough that
// nothing more is warranted.
func IsAvailable(roomID, checkIn, checkOut string, existing []Booking) bool {
	for _, b := range existing {
		if b.RoomID != roomID {
			continue
		}
		if b.CheckIn < checkOut && b.CheckOut > checkIn {
			return false
		}
	}
	return true
}
