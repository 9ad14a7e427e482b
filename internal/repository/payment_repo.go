package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshudas00/zippgo/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.PaymentRecord{})
}

func (r *PaymentRepo) Create(ctx context.Context, p *domain.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepo) ByBookingID(ctx context.Context, bookingID uint) ([]domain.PaymentRecord, error) {
	var out []domain.PaymentRecord
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
