package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
)

func newVehicleEnv(t *testing.T) (*VehicleSvc, *repository.VehicleRepo, *domain.User) {
	t.Helper()
	gdb := newTestDB(t)
	users := repository.NewUserRepo(gdb)
	vehicles := repository.NewVehicleRepo(gdb)
	partner := seedPartner(t, users)
	return NewVehicleSvc(vehicles, users), vehicles, partner
}

func activaInput(partnerID uint) CreateVehicleInput {
	return CreateVehicleInput{
		PartnerID:          strconv.FormatUint(uint64(partnerID), 10),
		VehicleType:        "scooter",
		Brand:              "Honda",
		Model:              "Activa",
		RegistrationNumber: "BR01AB1234",
		Year:               "2023",
		Color:              "Black",
		Location:           "Patna",
		HourlyRate:         "50",
		DailyRate:          "299",
		MonthlyRate:        "8000",
	}
}

func appErr(t *testing.T, err error) *apperrors.Error {
	t.Helper()
	var ae *apperrors.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperrors.Error, got %v", err)
	}
	return ae
}

func TestCreateVehicleDefaultsAndRoundTrip(t *testing.T) {
	svc, _, partner := newVehicleEnv(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, activaInput(partner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.Status != domain.VehicleAvailable {
		t.Errorf("status = %q, want available", v.Status)
	}
	if !v.GPSEnabled {
		t.Error("gpsEnabled should default to true")
	}

	got, err := svc.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Brand != "Honda" || got.Model != "Activa" || got.RegistrationNumber != "BR01AB1234" ||
		got.Year != 2023 || got.Color != "Black" || got.Location != "Patna" ||
		got.HourlyRate != 50 || got.DailyRate != 299 || got.MonthlyRate != 8000 ||
		got.PartnerID != partner.ID || got.VehicleType != domain.VehicleTypeScooter {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestCreateVehicleDuplicateRegistration(t *testing.T) {
	svc, vehicles, partner := newVehicleEnv(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, activaInput(partner.ID)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	in := activaInput(partner.ID)
	in.Brand = "TVS"
	in.Model = "Jupiter"
	_, err := svc.Create(ctx, in)
	if ae := appErr(t, err); ae.Code != "DUPLICATE_REGISTRATION" {
		t.Errorf("code = %s, want DUPLICATE_REGISTRATION", ae.Code)
	}

	out, err := vehicles.List(ctx, repository.VehicleFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("rows = %d, want 1 (no row persisted for the duplicate)", len(out))
	}
}

func TestCreateVehicleValidation(t *testing.T) {
	svc, _, partner := newVehicleEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*CreateVehicleInput)
		wantCode string
	}{
		{"missing brand", func(in *CreateVehicleInput) { in.Brand = "" }, "MISSING_FIELD"},
		{"missing rate", func(in *CreateVehicleInput) { in.MonthlyRate = "" }, "MISSING_FIELD"},
		{"bad type", func(in *CreateVehicleInput) { in.VehicleType = "car" }, "INVALID_VEHICLE_TYPE"},
		{"unknown partner", func(in *CreateVehicleInput) { in.PartnerID = "9999" }, "PARTNER_NOT_FOUND"},
		{"year not a number", func(in *CreateVehicleInput) { in.Year = "twenty" }, "INVALID_NUMBER"},
		{"fractional rate", func(in *CreateVehicleInput) { in.HourlyRate = "49.5" }, "INVALID_NUMBER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := activaInput(partner.ID)
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			if ae := appErr(t, err); ae.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", ae.Code, tt.wantCode)
			}
		})
	}
}

func TestListVehiclesSearch(t *testing.T) {
	svc, _, partner := newVehicleEnv(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, activaInput(partner.ID)); err != nil {
		t.Fatalf("create: %v", err)
	}
	other := activaInput(partner.ID)
	other.Brand = "Hero"
	other.Model = "Splendor Plus"
	other.RegistrationNumber = "BR01CD5678"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := svc.List(ctx, repository.VehicleFilter{Search: "Activa"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Model != "Activa" {
		t.Errorf("search returned %d rows, want exactly the Activa", len(out))
	}
}

func TestUpdateVehicle(t *testing.T) {
	svc, _, partner := newVehicleEnv(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, activaInput(partner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	secondIn := activaInput(partner.ID)
	secondIn.RegistrationNumber = "BR01CD5678"
	second, err := svc.Create(ctx, secondIn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	color := "Blue"
	updated, err := svc.Update(ctx, second.ID, UpdateVehicleInput{Color: &color})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Color != "Blue" || updated.RegistrationNumber != "BR01CD5678" {
		t.Errorf("partial update mismatch: %+v", updated)
	}

	// moving to an already-used registration is rejected
	reg := first.RegistrationNumber
	_, err = svc.Update(ctx, second.ID, UpdateVehicleInput{RegistrationNumber: &reg})
	if ae := appErr(t, err); ae.Code != "DUPLICATE_REGISTRATION" {
		t.Errorf("code = %s, want DUPLICATE_REGISTRATION", ae.Code)
	}

	// keeping your own registration is not a conflict
	own := second.RegistrationNumber
	if _, err := svc.Update(ctx, second.ID, UpdateVehicleInput{RegistrationNumber: &own}); err != nil {
		t.Errorf("same-registration update should pass, got %v", err)
	}

	if _, err := svc.Update(ctx, 9999, UpdateVehicleInput{Color: &color}); err == nil {
		t.Error("update of missing vehicle should fail")
	}
}

func TestUpdateVehicleRejectsBlankedFields(t *testing.T) {
	svc, _, partner := newVehicleEnv(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, activaInput(partner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := ""
	blank := " "
	tests := []struct {
		name string
		in   UpdateVehicleInput
	}{
		{"brand", UpdateVehicleInput{Brand: &empty}},
		{"model", UpdateVehicleInput{Model: &blank}},
		{"registrationNumber", UpdateVehicleInput{RegistrationNumber: &empty}},
		{"vehicleType", UpdateVehicleInput{VehicleType: &empty}},
		{"color", UpdateVehicleInput{Color: &empty}},
		{"location", UpdateVehicleInput{Location: &empty}},
		{"year", UpdateVehicleInput{Year: &empty}},
		{"hourlyRate", UpdateVehicleInput{HourlyRate: &empty}},
		{"dailyRate", UpdateVehicleInput{DailyRate: &blank}},
		{"monthlyRate", UpdateVehicleInput{MonthlyRate: &empty}},
		{"partnerId", UpdateVehicleInput{PartnerID: &empty}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, v.ID, tt.in)
			if ae := appErr(t, err); ae.Code != "MISSING_FIELD" {
				t.Errorf("code = %s, want MISSING_FIELD", ae.Code)
			}
		})
	}

	// nothing above may have touched the stored record
	got, err := svc.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Brand != "Honda" || got.RegistrationNumber != "BR01AB1234" || got.HourlyRate != 50 {
		t.Errorf("record changed by rejected updates: %+v", got)
	}

	// blanking the optional image is still allowed
	if _, err := svc.Update(ctx, v.ID, UpdateVehicleInput{ImageURL: &empty}); err != nil {
		t.Errorf("clearing imageUrl should pass, got %v", err)
	}
}

func TestDeleteVehicle(t *testing.T) {
	svc, _, partner := newVehicleEnv(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, activaInput(partner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	deleted, err := svc.Delete(ctx, v.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != v.ID || deleted.RegistrationNumber != v.RegistrationNumber {
		t.Errorf("delete should echo the removed record, got %+v", deleted)
	}
	_, err = svc.Get(ctx, v.ID)
	if ae := appErr(t, err); ae.Code != "NOT_FOUND" {
		t.Errorf("code = %s, want NOT_FOUND", ae.Code)
	}
	_, err = svc.Delete(ctx, v.ID)
	if ae := appErr(t, err); ae.Code != "NOT_FOUND" {
		t.Errorf("second delete code = %s, want NOT_FOUND", ae.Code)
	}
}
