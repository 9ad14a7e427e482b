package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshudas00/zippgo/internal/domain"
)

type BookingFilter struct {
	Status    string
	UserID    uint
	VehicleID uint
	Limit     int
	Offset    int
}

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{})
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepo) ByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Booking{})
	if f.Status != "" {
		qb = qb.Where("status = ?", f.Status)
	}
	if f.UserID != 0 {
		qb = qb.Where("user_id = ?", f.UserID)
	}
	if f.VehicleID != 0 {
		qb = qb.Where("vehicle_id = ?", f.VehicleID)
	}
	var out []domain.Booking
	if err := qb.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Decide applies the admin decision in a single transaction. The status is
// derived from the two flags: active only when both are set, pending
// otherwise. There is no distinct rejected state; a declined booking is
// observably identical to one never reviewed.
func (r *BookingRepo) Decide(ctx context.Context, id uint, approve, verifyKyc bool) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return err
		}
		b.AdminApproved = approve
		b.KYCVerified = verifyKyc
		if approve && verifyKyc {
			b.Status = domain.BookingActive
		} else {
			b.Status = domain.BookingPending
		}
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint, to domain.BookingStatus) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return err
		}
		b.Status = to
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}
