package service

import (
	"context"
	"strings"
	"time"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
)

type CouponSvc struct{ repo *repository.CouponRepo }

func NewCouponSvc(r *repository.CouponRepo) *CouponSvc { return &CouponSvc{repo: r} }

type CreateCouponInput struct {
	Code             string
	Description      string
	DiscountType     string
	DiscountValue    int64
	MinBookingAmount int64
	MaxDiscount      int64
	ValidFrom        string // RFC3339
	ValidUntil       string // RFC3339
	UsageLimit       int
}

func (s *CouponSvc) Create(ctx context.Context, in CreateCouponInput) (*domain.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		return nil, apperrors.MissingField("code")
	}
	if !domain.ValidDiscountType(in.DiscountType) {
		return nil, apperrors.Validation("invalid discount type: %s", in.DiscountType)
	}
	if in.DiscountValue <= 0 {
		return nil, apperrors.Validation("discountValue must be positive")
	}
	from, err := time.Parse(time.RFC3339, in.ValidFrom)
	if err != nil {
		return nil, apperrors.Validation("validFrom must be RFC3339")
	}
	until, err := time.Parse(time.RFC3339, in.ValidUntil)
	if err != nil {
		return nil, apperrors.Validation("validUntil must be RFC3339")
	}
	if !until.After(from) {
		return nil, apperrors.Validation("validUntil must be after validFrom")
	}
	taken, err := s.repo.CodeTaken(ctx, code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.DuplicateCode(code)
	}
	c := &domain.Coupon{
		Code:             code,
		Description:      in.Description,
		DiscountType:     domain.DiscountType(in.DiscountType),
		DiscountValue:    in.DiscountValue,
		MinBookingAmount: in.MinBookingAmount,
		MaxDiscount:      in.MaxDiscount,
		ValidFrom:        from.UTC(),
		ValidUntil:       until.UTC(),
		UsageLimit:       in.UsageLimit,
		Status:           "active",
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CouponSvc) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	c, err := s.repo.ByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("coupon")
		}
		return nil, err
	}
	return c, nil
}

func (s *CouponSvc) List(ctx context.Context, limit, offset int) ([]domain.Coupon, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *CouponSvc) Delete(ctx context.Context, id uint) (*domain.Coupon, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("coupon")
		}
		return nil, err
	}
	return c, nil
}
