package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
	"github.com/priyanshudas00/zippgo/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(s *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: s}
}

// GET /bookings?status=&userId=&vehicleId=&limit=&offset=
func (h *BookingHandler) List(c *gin.Context) {
	f := repository.BookingFilter{Status: c.Query("status")}
	f.Limit, f.Offset = pagination(c)
	if c.Query("userId") != "" {
		id, err := queryID(c, "userId")
		if err != nil {
			respondErr(c, err)
			return
		}
		f.UserID = id
	}
	if c.Query("vehicleId") != "" {
		id, err := queryID(c, "vehicleId")
		if err != nil {
			respondErr(c, err)
			return
		}
		f.VehicleID = id
	}
	out, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

// GET /bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /bookings. The rider comes from the JWT, not the body.
func (h *BookingHandler) Create(c *gin.Context) {
	var in struct {
		VehicleID      uint                  `json:"vehicleId" binding:"required"`
		StartDate      string                `json:"startDate" binding:"required"`
		EndDate        string                `json:"endDate"`
		DurationType   string                `json:"durationType" binding:"required"`
		TotalAmount    int64                 `json:"totalAmount" binding:"required"`
		PickupLocation string                `json:"pickupLocation" binding:"required"`
		DropLocation   string                `json:"dropLocation"`
		KYC            domain.KYCPayload     `json:"kyc"`
		Payment        domain.PaymentPayload `json:"payment"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	userID, err := callerID(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	b, err := h.svc.Create(c.Request.Context(), service.CreateBookingInput{
		UserID:         userID,
		VehicleID:      in.VehicleID,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		DurationType:   in.DurationType,
		TotalAmount:    in.TotalAmount,
		PickupLocation: in.PickupLocation,
		DropLocation:   in.DropLocation,
		KYC:            in.KYC,
		Payment:        in.Payment,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// POST /bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	b, err := h.svc.Cancel(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /admin/bookings/:id is the approval workflow. Any status supplied in
// the body is ignored; status is derived from the two flags.
func (h *BookingHandler) Decide(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	var in struct {
		AdminApproved bool `json:"adminApproved"`
		KYCVerified   bool `json:"kycVerified"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	b, err := h.svc.Decide(c.Request.Context(), id, in.AdminApproved, in.KYCVerified)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// callerID resolves the authenticated user id set by the JWTAuth middleware.
func callerID(c *gin.Context) (uint, error) {
	v, ok := c.Get("sub")
	if !ok {
		return 0, apperrors.Unauthorized("missing identity")
	}
	sub, _ := v.(string)
	n, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, apperrors.Unauthorized("invalid identity")
	}
	return uint(n), nil
}
