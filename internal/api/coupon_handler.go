package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyanshudas00/zippgo/internal/service"
)

type CouponHandler struct {
	svc *service.CouponSvc
}

func NewCouponHandler(s *service.CouponSvc) *CouponHandler {
	return &CouponHandler{svc: s}
}

// POST /coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var in struct {
		Code             string `json:"code"`
		Description      string `json:"description"`
		DiscountType     string `json:"discountType"`
		DiscountValue    int64  `json:"discountValue"`
		MinBookingAmount int64  `json:"minBookingAmount"`
		MaxDiscount      int64  `json:"maxDiscount"`
		ValidFrom        string `json:"validFrom"`
		ValidUntil       string `json:"validUntil"`
		UsageLimit       int    `json:"usageLimit"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	cp, err := h.svc.Create(c.Request.Context(), service.CreateCouponInput{
		Code:             in.Code,
		Description:      in.Description,
		DiscountType:     in.DiscountType,
		DiscountValue:    in.DiscountValue,
		MinBookingAmount: in.MinBookingAmount,
		MaxDiscount:      in.MaxDiscount,
		ValidFrom:        in.ValidFrom,
		ValidUntil:       in.ValidUntil,
		UsageLimit:       in.UsageLimit,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cp)
}

// GET /coupons returns a single record when ?code= is present, a list otherwise.
func (h *CouponHandler) GetOrList(c *gin.Context) {
	if code := c.Query("code"); code != "" {
		cp, err := h.svc.GetByCode(c.Request.Context(), code)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, cp)
		return
	}
	limit, offset := pagination(c)
	out, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": out})
}

// DELETE /coupons?id=
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}
	cp, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cp)
}
