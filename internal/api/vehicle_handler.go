package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyanshudas00/zippgo/internal/repository"
	"github.com/priyanshudas00/zippgo/internal/service"
)

type VehicleHandler struct {
	svc *service.VehicleSvc
}

func NewVehicleHandler(s *service.VehicleSvc) *VehicleHandler {
	return &VehicleHandler{svc: s}
}

// numeric fields bind as json.Number so that non-integer values reach the
// service and come back as INVALID_NUMBER rather than a decode error
type vehicleCreateReq struct {
	PartnerID          json.Number `json:"partnerId"`
	VehicleType        string      `json:"vehicleType"`
	Brand              string      `json:"brand"`
	Model              string      `json:"model"`
	RegistrationNumber string      `json:"registrationNumber"`
	Year               json.Number `json:"year"`
	Color              string      `json:"color"`
	ImageURL           string      `json:"imageUrl"`
	Location           string      `json:"location"`
	HourlyRate         json.Number `json:"hourlyRate"`
	DailyRate          json.Number `json:"dailyRate"`
	MonthlyRate        json.Number `json:"monthlyRate"`
	Status             string      `json:"status"`
	GPSEnabled         *bool       `json:"gpsEnabled"`
}

type vehicleUpdateReq struct {
	PartnerID          *json.Number `json:"partnerId"`
	VehicleType        *string      `json:"vehicleType"`
	Brand              *string      `json:"brand"`
	Model              *string      `json:"model"`
	RegistrationNumber *string      `json:"registrationNumber"`
	Year               *json.Number `json:"year"`
	Color              *string      `json:"color"`
	ImageURL           *string      `json:"imageUrl"`
	Location           *string      `json:"location"`
	HourlyRate         *json.Number `json:"hourlyRate"`
	DailyRate          *json.Number `json:"dailyRate"`
	MonthlyRate        *json.Number `json:"monthlyRate"`
	Status             *string      `json:"status"`
	GPSEnabled         *bool        `json:"gpsEnabled"`
}

// GET /vehicles returns a single record when ?id= is present, a filtered list otherwise.
func (h *VehicleHandler) GetOrList(c *gin.Context) {
	if c.Query("id") != "" {
		id, err := queryID(c, "id")
		if err != nil {
			respondErr(c, err)
			return
		}
		v, err := h.svc.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
		return
	}

	f := repository.VehicleFilter{
		VehicleType: c.Query("vehicleType"),
		Status:      c.Query("status"),
		Location:    c.Query("location"),
		Search:      c.Query("search"),
	}
	f.Limit, f.Offset = pagination(c)
	if c.Query("partnerId") != "" {
		partnerID, err := queryID(c, "partnerId")
		if err != nil {
			respondErr(c, err)
			return
		}
		f.PartnerID = partnerID
	}
	out, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": out})
}

// POST /vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var in vehicleCreateReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	v, err := h.svc.Create(c.Request.Context(), service.CreateVehicleInput{
		PartnerID:          in.PartnerID.String(),
		VehicleType:        in.VehicleType,
		Brand:              in.Brand,
		Model:              in.Model,
		RegistrationNumber: in.RegistrationNumber,
		Year:               in.Year.String(),
		Color:              in.Color,
		ImageURL:           in.ImageURL,
		Location:           in.Location,
		HourlyRate:         in.HourlyRate.String(),
		DailyRate:          in.DailyRate.String(),
		MonthlyRate:        in.MonthlyRate.String(),
		Status:             in.Status,
		GPSEnabled:         in.GPSEnabled,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /vehicles?id=
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}
	var in vehicleUpdateReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	v, err := h.svc.Update(c.Request.Context(), id, service.UpdateVehicleInput{
		PartnerID:          numPtr(in.PartnerID),
		VehicleType:        in.VehicleType,
		Brand:              in.Brand,
		Model:              in.Model,
		RegistrationNumber: in.RegistrationNumber,
		Year:               numPtr(in.Year),
		Color:              in.Color,
		ImageURL:           in.ImageURL,
		Location:           in.Location,
		HourlyRate:         numPtr(in.HourlyRate),
		DailyRate:          numPtr(in.DailyRate),
		MonthlyRate:        numPtr(in.MonthlyRate),
		Status:             in.Status,
		GPSEnabled:         in.GPSEnabled,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /vehicles?id= hard-deletes and echoes the removed record.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}
	v, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func numPtr(n *json.Number) *string {
	if n == nil {
		return nil
	}
	s := n.String()
	return &s
}
