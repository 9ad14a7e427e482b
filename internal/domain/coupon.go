package domain

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func ValidDiscountType(d string) bool {
	switch DiscountType(d) {
	case DiscountPercentage, DiscountFixed:
		return true
	}
	return false
}

type Coupon struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	Code             string       `gorm:"uniqueIndex" json:"code"`
	Description      string       `json:"description"`
	DiscountType     DiscountType `json:"discountType"`
	DiscountValue    int64        `json:"discountValue"`
	MinBookingAmount int64        `json:"minBookingAmount,omitempty"`
	MaxDiscount      int64        `json:"maxDiscount,omitempty"`
	ValidFrom        time.Time    `json:"validFrom"`
	ValidUntil       time.Time    `json:"validUntil"`
	UsageLimit       int          `json:"usageLimit,omitempty"`
	UsedCount        int          `json:"usedCount"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}
