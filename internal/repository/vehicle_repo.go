package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/priyanshudas00/zippgo/internal/domain"
)

const maxPageSize = 100

type VehicleFilter struct {
	VehicleType string
	Status      string
	Location    string
	PartnerID   uint
	Search      string
	Limit       int
	Offset      int
}

type VehicleRepo struct{ db *gorm.DB }

func NewVehicleRepo(db *gorm.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

func (r *VehicleRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Vehicle{})
}

func (r *VehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleRepo) ByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// RegistrationTaken checks uniqueness, optionally excluding one vehicle
// (used when an update keeps its own registration number).
func (r *VehicleRepo) RegistrationTaken(ctx context.Context, reg string, excludeID uint) (bool, error) {
	qb := r.db.WithContext(ctx).Model(&domain.Vehicle{}).Where("registration_number = ?", reg)
	if excludeID != 0 {
		qb = qb.Where("id <> ?", excludeID)
	}
	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VehicleRepo) List(ctx context.Context, f VehicleFilter) ([]domain.Vehicle, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Vehicle{})
	if f.VehicleType != "" {
		qb = qb.Where("vehicle_type = ?", f.VehicleType)
	}
	if f.Status != "" {
		qb = qb.Where("status = ?", f.Status)
	}
	if f.Location != "" {
		qb = qb.Where("location = ?", f.Location)
	}
	if f.PartnerID != 0 {
		qb = qb.Where("partner_id = ?", f.PartnerID)
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		like := "%" + q + "%"
		qb = qb.Where("(brand LIKE ? OR model LIKE ? OR registration_number LIKE ?)", like, like, like)
	}
	var out []domain.Vehicle
	if err := qb.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VehicleRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.Vehicle, error) {
	if err := r.db.WithContext(ctx).Model(&domain.Vehicle{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.ByID(ctx, id)
}

// Delete hard-deletes and returns the removed record.
func (r *VehicleRepo) Delete(ctx context.Context, id uint) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Vehicle{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Vehicle{}).Count(&n).Error
	return n, err
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
