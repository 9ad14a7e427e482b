package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
)

type VehicleSvc struct {
	vehicles *repository.VehicleRepo
	users    *repository.UserRepo
}

func NewVehicleSvc(v *repository.VehicleRepo, u *repository.UserRepo) *VehicleSvc {
	return &VehicleSvc{vehicles: v, users: u}
}

// CreateVehicleInput carries numeric fields as strings so that malformed
// values surface as INVALID_NUMBER instead of a decode failure.
type CreateVehicleInput struct {
	PartnerID          string
	VehicleType        string
	Brand              string
	Model              string
	RegistrationNumber string
	Year               string
	Color              string
	ImageURL           string
	Location           string
	HourlyRate         string
	DailyRate          string
	MonthlyRate        string
	Status             string
	GPSEnabled         *bool
}

type UpdateVehicleInput struct {
	PartnerID          *string
	VehicleType        *string
	Brand              *string
	Model              *string
	RegistrationNumber *string
	Year               *string
	Color              *string
	ImageURL           *string
	Location           *string
	HourlyRate         *string
	DailyRate          *string
	MonthlyRate        *string
	Status             *string
	GPSEnabled         *bool
}

func (s *VehicleSvc) Get(ctx context.Context, id uint) (*domain.Vehicle, error) {
	v, err := s.vehicles.ByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("vehicle")
		}
		return nil, err
	}
	return v, nil
}

func (s *VehicleSvc) List(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx, f)
}

func (s *VehicleSvc) Create(ctx context.Context, in CreateVehicleInput) (*domain.Vehicle, error) {
	required := []struct{ name, value string }{
		{"partnerId", in.PartnerID},
		{"vehicleType", in.VehicleType},
		{"brand", in.Brand},
		{"model", in.Model},
		{"registrationNumber", in.RegistrationNumber},
		{"year", in.Year},
		{"color", in.Color},
		{"location", in.Location},
		{"hourlyRate", in.HourlyRate},
		{"dailyRate", in.DailyRate},
		{"monthlyRate", in.MonthlyRate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperrors.MissingField(f.name)
		}
	}
	if !domain.ValidVehicleType(in.VehicleType) {
		return nil, apperrors.InvalidVehicleType(in.VehicleType)
	}
	partnerID, err := parseUintField(in.PartnerID, "partnerId")
	if err != nil {
		return nil, err
	}
	ok, err := s.users.Exists(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.PartnerNotFound(partnerID)
	}
	year, err := parseIntField(in.Year, "year")
	if err != nil {
		return nil, err
	}
	hourly, err := parseIntField(in.HourlyRate, "hourlyRate")
	if err != nil {
		return nil, err
	}
	daily, err := parseIntField(in.DailyRate, "dailyRate")
	if err != nil {
		return nil, err
	}
	monthly, err := parseIntField(in.MonthlyRate, "monthlyRate")
	if err != nil {
		return nil, err
	}
	reg := strings.TrimSpace(in.RegistrationNumber)
	taken, err := s.vehicles.RegistrationTaken(ctx, reg, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.DuplicateRegistration(reg)
	}

	status := domain.VehicleAvailable
	if in.Status != "" {
		if !domain.ValidVehicleStatus(in.Status) {
			return nil, apperrors.Validation("invalid status: %s", in.Status)
		}
		status = domain.VehicleStatus(in.Status)
	}
	gps := true
	if in.GPSEnabled != nil {
		gps = *in.GPSEnabled
	}

	v := &domain.Vehicle{
		PartnerID:          partnerID,
		VehicleType:        domain.VehicleType(in.VehicleType),
		Brand:              strings.TrimSpace(in.Brand),
		Model:              strings.TrimSpace(in.Model),
		RegistrationNumber: reg,
		Year:               int(year),
		Color:              strings.TrimSpace(in.Color),
		ImageURL:           strings.TrimSpace(in.ImageURL),
		HourlyRate:         hourly,
		DailyRate:          daily,
		MonthlyRate:        monthly,
		Status:             status,
		Location:           strings.TrimSpace(in.Location),
		GPSEnabled:         gps,
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update applies the create-time rules only to fields present in the
// request. Registration uniqueness is re-checked only when it changes.
func (s *VehicleSvc) Update(ctx context.Context, id uint, in UpdateVehicleInput) (*domain.Vehicle, error) {
	current, err := s.vehicles.ByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("vehicle")
		}
		return nil, err
	}

	// a present field goes through the same rules as create: required
	// fields cannot be blanked by an update
	fields := map[string]any{}
	if in.PartnerID != nil {
		if err := requirePresent(*in.PartnerID, "partnerId"); err != nil {
			return nil, err
		}
		partnerID, err := parseUintField(*in.PartnerID, "partnerId")
		if err != nil {
			return nil, err
		}
		ok, err := s.users.Exists(ctx, partnerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.PartnerNotFound(partnerID)
		}
		fields["partner_id"] = partnerID
	}
	if in.VehicleType != nil {
		if err := requirePresent(*in.VehicleType, "vehicleType"); err != nil {
			return nil, err
		}
		if !domain.ValidVehicleType(*in.VehicleType) {
			return nil, apperrors.InvalidVehicleType(*in.VehicleType)
		}
		fields["vehicle_type"] = *in.VehicleType
	}
	if in.Brand != nil {
		if err := requirePresent(*in.Brand, "brand"); err != nil {
			return nil, err
		}
		fields["brand"] = strings.TrimSpace(*in.Brand)
	}
	if in.Model != nil {
		if err := requirePresent(*in.Model, "model"); err != nil {
			return nil, err
		}
		fields["model"] = strings.TrimSpace(*in.Model)
	}
	if in.RegistrationNumber != nil {
		if err := requirePresent(*in.RegistrationNumber, "registrationNumber"); err != nil {
			return nil, err
		}
		reg := strings.TrimSpace(*in.RegistrationNumber)
		if reg != current.RegistrationNumber {
			taken, err := s.vehicles.RegistrationTaken(ctx, reg, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.DuplicateRegistration(reg)
			}
		}
		fields["registration_number"] = reg
	}
	if in.Year != nil {
		if err := requirePresent(*in.Year, "year"); err != nil {
			return nil, err
		}
		year, err := parseIntField(*in.Year, "year")
		if err != nil {
			return nil, err
		}
		fields["year"] = year
	}
	if in.Color != nil {
		if err := requirePresent(*in.Color, "color"); err != nil {
			return nil, err
		}
		fields["color"] = strings.TrimSpace(*in.Color)
	}
	if in.ImageURL != nil {
		// imageUrl is optional at create time, so blanking it is allowed
		fields["image_url"] = strings.TrimSpace(*in.ImageURL)
	}
	if in.Location != nil {
		if err := requirePresent(*in.Location, "location"); err != nil {
			return nil, err
		}
		fields["location"] = strings.TrimSpace(*in.Location)
	}
	if in.HourlyRate != nil {
		if err := requirePresent(*in.HourlyRate, "hourlyRate"); err != nil {
			return nil, err
		}
		rate, err := parseIntField(*in.HourlyRate, "hourlyRate")
		if err != nil {
			return nil, err
		}
		fields["hourly_rate"] = rate
	}
	if in.DailyRate != nil {
		if err := requirePresent(*in.DailyRate, "dailyRate"); err != nil {
			return nil, err
		}
		rate, err := parseIntField(*in.DailyRate, "dailyRate")
		if err != nil {
			return nil, err
		}
		fields["daily_rate"] = rate
	}
	if in.MonthlyRate != nil {
		if err := requirePresent(*in.MonthlyRate, "monthlyRate"); err != nil {
			return nil, err
		}
		rate, err := parseIntField(*in.MonthlyRate, "monthlyRate")
		if err != nil {
			return nil, err
		}
		fields["monthly_rate"] = rate
	}
	if in.Status != nil {
		if !domain.ValidVehicleStatus(*in.Status) {
			return nil, apperrors.Validation("invalid status: %s", *in.Status)
		}
		fields["status"] = *in.Status
	}
	if in.GPSEnabled != nil {
		fields["gps_enabled"] = *in.GPSEnabled
	}
	if len(fields) == 0 {
		return current, nil
	}
	return s.vehicles.UpdateFields(ctx, id, fields)
}

func (s *VehicleSvc) Delete(ctx context.Context, id uint) (*domain.Vehicle, error) {
	v, err := s.vehicles.Delete(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("vehicle")
		}
		return nil, err
	}
	return v, nil
}

func requirePresent(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.MissingField(name)
	}
	return nil
}

func parseUintField(s, name string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, apperrors.InvalidNumber(name)
	}
	return uint(n), nil
}

func parseIntField(s, name string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, apperrors.InvalidNumber(name)
	}
	return n, nil
}
