package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/priyanshudas00/zippgo/internal/domain"
)

// Seed loads a minimal working dataset on an empty database: one admin,
// one partner with a small fleet, one rider with bookings in every state.
// Seeding is the only writer of completed bookings.
func Seed(gdb *gorm.DB) {
	var count int64
	gdb.Model(&domain.User{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[seed] hash password: %v", err)
	}

	admin := domain.User{Name: "ZippGo Admin", Email: "admin@zippgo.in", Role: domain.RoleAdmin, PasswordHash: string(hash), City: "Patna"}
	partner := domain.User{Name: "Ravi Fleet Services", Email: "ravi@zippgo.in", Role: domain.RolePartner, PasswordHash: string(hash), Phone: "9876543210", City: "Patna"}
	rider := domain.User{Name: "Ankit Kumar", Email: "ankit@example.com", Role: domain.RoleRider, PasswordHash: string(hash), Phone: "9123456780", City: "Patna"}
	for _, u := range []*domain.User{&admin, &partner, &rider} {
		if err := gdb.Create(u).Error; err != nil {
			log.Fatalf("[seed] create user: %v", err)
		}
	}

	vehicles := []domain.Vehicle{
		{PartnerID: partner.ID, VehicleType: domain.VehicleTypeScooter, Brand: "Honda", Model: "Activa", RegistrationNumber: "BR01AB1234", Year: 2023, Color: "Black", Location: "Patna", HourlyRate: 50, DailyRate: 299, MonthlyRate: 8000, Status: domain.VehicleAvailable, GPSEnabled: true},
		{PartnerID: partner.ID, VehicleType: domain.VehicleTypeBike, Brand: "Hero", Model: "Splendor Plus", RegistrationNumber: "BR01CD5678", Year: 2022, Color: "Red", Location: "Patna", HourlyRate: 40, DailyRate: 249, MonthlyRate: 6500, Status: domain.VehicleAvailable, GPSEnabled: true},
		{PartnerID: partner.ID, VehicleType: domain.VehicleTypeElectric, Brand: "Ola", Model: "S1 Pro", RegistrationNumber: "BR01EF9012", Year: 2024, Color: "White", Location: "Danapur", HourlyRate: 60, DailyRate: 349, MonthlyRate: 9500, Status: domain.VehicleMaintenance, GPSEnabled: true},
	}
	for i := range vehicles {
		if err := gdb.Create(&vehicles[i]).Error; err != nil {
			log.Fatalf("[seed] create vehicle: %v", err)
		}
	}

	now := time.Now().UTC()
	lastWeek := now.AddDate(0, 0, -7)
	yesterday := now.AddDate(0, 0, -1)
	bookings := []domain.Booking{
		{UserID: rider.ID, VehicleID: vehicles[0].ID, StartDate: now.AddDate(0, 0, 1), DurationType: domain.DurationDaily, TotalAmount: 299, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending, PickupLocation: "Patna Junction"},
		{UserID: rider.ID, VehicleID: vehicles[1].ID, StartDate: lastWeek, EndDate: &yesterday, DurationType: domain.DurationDaily, TotalAmount: 1494, Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid, PickupLocation: "Boring Road", AdminApproved: true, KYCVerified: true},
		{UserID: rider.ID, VehicleID: vehicles[2].ID, StartDate: yesterday, DurationType: domain.DurationHourly, TotalAmount: 120, Status: domain.BookingCancelled, PaymentStatus: domain.PaymentPending, PickupLocation: "Patna Airport"},
	}
	for i := range bookings {
		if err := gdb.Create(&bookings[i]).Error; err != nil {
			log.Fatalf("[seed] create booking: %v", err)
		}
	}

	log.Printf("[seed] seeded %d users, %d vehicles, %d bookings", 3, len(vehicles), len(bookings))
}
