package domain

import "time"

// PaymentRecord is the ledger row behind a booking's payment payload.
// Actual capture happens at an external processor; we only keep the reference.
type PaymentRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"index;not null" json:"bookingId"`
	Reference string    `gorm:"uniqueIndex" json:"reference"`
	Method    string    `json:"method"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
