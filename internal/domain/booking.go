package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type DurationType string

const (
	DurationHourly  DurationType = "hourly"
	DurationDaily   DurationType = "daily"
	DurationMonthly DurationType = "monthly"
)

func ValidDurationType(d string) bool {
	switch DurationType(d) {
	case DurationHourly, DurationDaily, DurationMonthly:
		return true
	}
	return false
}

// KYCPayload is the rider's identity submission, stored as a JSON column.
// The caller asserts its validity; the approval workflow only flips flags.
type KYCPayload struct {
	Phone         string   `json:"phone,omitempty"`
	IDNumber      string   `json:"idNumber,omitempty"`
	LicenseNumber string   `json:"licenseNumber,omitempty"`
	DocumentURLs  []string `json:"documentUrls,omitempty"`
}

type PaymentPayload struct {
	Method    string `json:"method,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type Booking struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"index;not null" json:"userId"`
	User           User           `gorm:"foreignKey:UserID" json:"-"`
	VehicleID      uint           `gorm:"index;not null" json:"vehicleId"`
	Vehicle        Vehicle        `gorm:"foreignKey:VehicleID" json:"-"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	DurationType   DurationType   `json:"durationType"`
	TotalAmount    int64          `json:"totalAmount"`
	Status         BookingStatus  `gorm:"index" json:"status"`
	PaymentStatus  PaymentStatus  `json:"paymentStatus"`
	PickupLocation string         `json:"pickupLocation"`
	DropLocation   string         `json:"dropLocation,omitempty"`
	KYC            KYCPayload     `gorm:"serializer:json" json:"kyc"`
	Payment        PaymentPayload `gorm:"serializer:json" json:"payment"`
	AdminApproved  bool           `json:"adminApproved"`
	KYCVerified    bool           `json:"kycVerified"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Usable reports whether the booking may be handed over for pickup.
func (b *Booking) Usable() bool {
	return b.AdminApproved && b.KYCVerified
}
