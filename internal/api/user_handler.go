package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/service"
)

type UserHandler struct {
	svc *service.UserSvc
}

func NewUserHandler(s *service.UserSvc) *UserHandler {
	return &UserHandler{svc: s}
}

// POST /users handles open registration.
func (h *UserHandler) Create(c *gin.Context) {
	var in struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		Role            string `json:"role"`
		Address         string `json:"address"`
		City            string `json:"city"`
		ProfileImageURL string `json:"profileImageUrl"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	u, err := h.svc.Create(c.Request.Context(), service.CreateUserInput{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Password:        in.Password,
		Role:            in.Role,
		Address:         in.Address,
		City:            in.City,
		ProfileImageURL: in.ProfileImageURL,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GET /users returns a single record when ?id= is present, a filtered list otherwise.
func (h *UserHandler) GetOrList(c *gin.Context) {
	if c.Query("id") != "" {
		id, err := queryID(c, "id")
		if err != nil {
			respondErr(c, err)
			return
		}
		u, err := h.svc.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
		return
	}
	limit, offset := pagination(c)
	out, err := h.svc.List(c.Request.Context(), limit, offset, c.Query("search"), c.Query("role"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// PUT /users?id= applies a profile edit. Riders may edit only their own
// record; admins may edit anyone.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}
	caller, err := callerID(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	v, _ := c.Get("role")
	role, _ := v.(string)
	if caller != id && role != "admin" {
		respondErr(c, apperrors.Forbidden("cannot edit another user's profile"))
		return
	}
	var in struct {
		Name            string `json:"name"`
		Phone           string `json:"phone"`
		Address         string `json:"address"`
		City            string `json:"city"`
		ProfileImageURL string `json:"profileImageUrl"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, in.Name, in.Phone, in.Address, in.City, in.ProfileImageURL)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /users?id=
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}
	u, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
