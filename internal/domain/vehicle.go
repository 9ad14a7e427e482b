package domain

import "time"

type VehicleType string

const (
	VehicleTypeBike     VehicleType = "bike"
	VehicleTypeScooter  VehicleType = "scooter"
	VehicleTypeElectric VehicleType = "electric"
)

func ValidVehicleType(t string) bool {
	switch VehicleType(t) {
	case VehicleTypeBike, VehicleTypeScooter, VehicleTypeElectric:
		return true
	}
	return false
}

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleBooked      VehicleStatus = "booked"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleInactive    VehicleStatus = "inactive"
)

func ValidVehicleStatus(s string) bool {
	switch VehicleStatus(s) {
	case VehicleAvailable, VehicleBooked, VehicleMaintenance, VehicleInactive:
		return true
	}
	return false
}

type Vehicle struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	PartnerID          uint          `gorm:"index;not null" json:"partnerId"`
	Partner            User          `gorm:"foreignKey:PartnerID" json:"-"`
	VehicleType        VehicleType   `gorm:"index" json:"vehicleType"`
	Brand              string        `json:"brand"`
	Model              string        `json:"model"`
	RegistrationNumber string        `gorm:"uniqueIndex" json:"registrationNumber"`
	Year               int           `json:"year"`
	Color              string        `json:"color"`
	ImageURL           string        `json:"imageUrl"`
	HourlyRate         int64         `json:"hourlyRate"`
	DailyRate          int64         `json:"dailyRate"`
	MonthlyRate        int64         `json:"monthlyRate"`
	Status             VehicleStatus `gorm:"index" json:"status"`
	Location           string        `gorm:"index" json:"location"`
	GPSEnabled         bool          `json:"gpsEnabled"`
	LastServiceAt      *time.Time    `json:"lastServiceAt,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}
