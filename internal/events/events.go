package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKBookingCreated   = "booking.created"
	RKBookingCancelled = "booking.cancelled"
)

type BookingCreated struct {
	BookingID uint  `json:"booking_id"`
	UserID    uint  `json:"user_id"`
	VehicleID uint  `json:"vehicle_id"`
	Start     int64 `json:"start"` // unix seconds
	Amount    int64 `json:"amount"`
}

type BookingSimple struct {
	BookingID uint `json:"booking_id"`
}

func MustUnmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
