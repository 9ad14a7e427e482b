package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyanshudas00/zippgo/internal/middlewares"
	"github.com/priyanshudas00/zippgo/pkg/auth"
)

type Handlers struct {
	Vehicles *VehicleHandler
	Bookings *BookingHandler
	Users    *UserHandler
	Coupons  *CouponHandler
	Auth     *AuthHandler
	JWT      *auth.Manager
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", h.Auth.Login)
	r.POST("/users", h.Users.Create)

	// catalog reads are public; everything that mutates needs a token
	r.GET("/vehicles", h.Vehicles.GetOrList)
	r.GET("/coupons", h.Coupons.GetOrList)

	fleet := r.Group("", middlewares.JWTAuth(h.JWT), middlewares.RequireRole("admin", "partner"))
	{
		fleet.POST("/vehicles", h.Vehicles.Create)
		fleet.PUT("/vehicles", h.Vehicles.Update)
		fleet.DELETE("/vehicles", h.Vehicles.Delete)
	}

	secured := r.Group("", middlewares.JWTAuth(h.JWT))
	{
		secured.GET("/bookings", h.Bookings.List)
		secured.GET("/bookings/:id", h.Bookings.Get)
		secured.POST("/bookings", h.Bookings.Create)
		secured.POST("/bookings/:id/cancel", h.Bookings.Cancel)
		secured.PUT("/users", h.Users.Update)
	}

	admin := r.Group("/admin", middlewares.JWTAuth(h.JWT), middlewares.RequireRole("admin"))
	{
		admin.PATCH("/bookings/:id", h.Bookings.Decide)
	}

	staff := r.Group("", middlewares.JWTAuth(h.JWT), middlewares.RequireRole("admin", "staff"))
	{
		staff.GET("/users", h.Users.GetOrList)
		staff.DELETE("/users", h.Users.Delete)
		staff.POST("/coupons", h.Coupons.Create)
		staff.DELETE("/coupons", h.Coupons.Delete)
	}

	return r
}
