package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshudas00/zippgo/internal/domain"
)

type CouponRepo struct{ db *gorm.DB }

func NewCouponRepo(db *gorm.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

func (r *CouponRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Coupon{})
}

func (r *CouponRepo) Create(ctx context.Context, c *domain.Coupon) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CouponRepo) ByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var c domain.Coupon
	if err := r.db.WithContext(ctx).First(&c, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepo) CodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Coupon{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CouponRepo) List(ctx context.Context, limit, offset int) ([]domain.Coupon, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	var out []domain.Coupon
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CouponRepo) Delete(ctx context.Context, id uint) (*domain.Coupon, error) {
	var c domain.Coupon
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Coupon{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}
