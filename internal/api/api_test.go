package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
	"github.com/priyanshudas00/zippgo/internal/service"
	"github.com/priyanshudas00/zippgo/pkg/auth"
)

type apiEnv struct {
	router  *gin.Engine
	gdb     *gorm.DB
	jwt     *auth.Manager
	admin   *domain.User
	partner *domain.User
	rider   *domain.User
}

type nopPublisher struct{}

func (nopPublisher) PublishJSON(context.Context, string, any) error { return nil }

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&domain.User{}, &domain.Vehicle{}, &domain.Booking{}, &domain.Coupon{}, &domain.PaymentRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	users := repository.NewUserRepo(gdb)
	vehicles := repository.NewVehicleRepo(gdb)
	bookings := repository.NewBookingRepo(gdb)
	coupons := repository.NewCouponRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)

	ctx := context.Background()
	admin := &domain.User{Name: "Admin", Email: "admin@zippgo.in", Role: domain.RoleAdmin}
	partner := &domain.User{Name: "Ravi Fleet Services", Email: "ravi@zippgo.in", Role: domain.RolePartner}
	rider := &domain.User{Name: "Ankit Kumar", Email: "ankit@example.com", Role: domain.RoleRider}
	for _, u := range []*domain.User{admin, partner, rider} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	jwtm := auth.NewManager("test-secret")
	h := Handlers{
		Vehicles: NewVehicleHandler(service.NewVehicleSvc(vehicles, users)),
		Bookings: NewBookingHandler(service.NewBookingSvc(bookings, vehicles, users, payments, nopPublisher{})),
		Users:    NewUserHandler(service.NewUserSvc(users)),
		Coupons:  NewCouponHandler(service.NewCouponSvc(coupons)),
		Auth:     NewAuthHandler(service.NewAuthSvc(users, jwtm, time.Hour, 24*time.Hour)),
		JWT:      jwtm,
	}
	return &apiEnv{router: NewRouter(h), gdb: gdb, jwt: jwtm, admin: admin, partner: partner, rider: rider}
}

func (e *apiEnv) token(t *testing.T, u *domain.User) string {
	t.Helper()
	sub := strconv.FormatUint(uint64(u.ID), 10)
	tok, err := e.jwt.CreateAccessToken(sub, string(u.Role), u.Name, time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return tok
}

func (e *apiEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return m
}

func activaBody(partnerID uint) map[string]any {
	return map[string]any{
		"partnerId":          partnerID,
		"vehicleType":        "scooter",
		"brand":              "Honda",
		"model":              "Activa",
		"registrationNumber": "BR01AB1234",
		"year":               2023,
		"color":              "Black",
		"location":           "Patna",
		"hourlyRate":         50,
		"dailyRate":          299,
		"monthlyRate":        8000,
	}
}

func TestVehicleCreateEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	adminTok := env.token(t, env.admin)

	w := env.do(t, http.MethodPost, "/vehicles", adminTok, activaBody(env.partner.ID))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s, want 201", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != "available" {
		t.Errorf("status defaulted to %v, want available", body["status"])
	}
	if body["gpsEnabled"] != true {
		t.Errorf("gpsEnabled defaulted to %v, want true", body["gpsEnabled"])
	}

	// round-trip through the public read path
	id := int(body["id"].(float64))
	w = env.do(t, http.MethodGet, fmt.Sprintf("/vehicles?id=%d", id), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", w.Code)
	}
	got := decodeBody(t, w)
	if got["registrationNumber"] != "BR01AB1234" || got["brand"] != "Honda" {
		t.Errorf("round-trip mismatch: %v", got)
	}
}

func TestVehicleCreateAuth(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/vehicles", "", activaBody(env.partner.ID))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w = env.do(t, http.MethodPost, "/vehicles", env.token(t, env.rider), activaBody(env.partner.ID))
	if w.Code != http.StatusForbidden {
		t.Errorf("rider token: status = %d, want 403", w.Code)
	}
}

func TestVehicleDuplicateRegistrationConflict(t *testing.T) {
	env := newAPIEnv(t)
	tok := env.token(t, env.partner)

	if w := env.do(t, http.MethodPost, "/vehicles", tok, activaBody(env.partner.ID)); w.Code != http.StatusCreated {
		t.Fatalf("first create: %d", w.Code)
	}
	w := env.do(t, http.MethodPost, "/vehicles", tok, activaBody(env.partner.ID))
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "DUPLICATE_REGISTRATION" {
		t.Errorf("code = %v, want DUPLICATE_REGISTRATION", body["code"])
	}
}

func TestVehicleNonNumericID(t *testing.T) {
	env := newAPIEnv(t)
	w := env.do(t, http.MethodGet, "/vehicles?id=abc", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "VALIDATION_ERROR" {
		t.Errorf("code = %v, want VALIDATION_ERROR", body["code"])
	}
}

func TestBookingDecideEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	v := &domain.Vehicle{PartnerID: env.partner.ID, VehicleType: domain.VehicleTypeScooter,
		Brand: "Honda", Model: "Activa", RegistrationNumber: "BR01AB1234", Year: 2023,
		Color: "Black", Location: "Patna", HourlyRate: 50, DailyRate: 299, MonthlyRate: 8000,
		Status: domain.VehicleAvailable}
	if err := env.gdb.WithContext(ctx).Create(v).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	b := &domain.Booking{UserID: env.rider.ID, VehicleID: v.ID,
		StartDate: time.Now().UTC(), DurationType: domain.DurationDaily, TotalAmount: 299,
		Status: domain.BookingPending, PaymentStatus: domain.PaymentPending, PickupLocation: "Patna Junction"}
	if err := env.gdb.WithContext(ctx).Create(b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	adminTok := env.token(t, env.admin)
	path := fmt.Sprintf("/admin/bookings/%d", b.ID)

	// approval without KYC keeps the booking pending
	w := env.do(t, http.MethodPatch, path, adminTok, map[string]any{"adminApproved": true, "kycVerified": false})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != "pending" || body["adminApproved"] != true {
		t.Errorf("want pending with adminApproved=true, got %v", body)
	}

	w = env.do(t, http.MethodPatch, path, adminTok, map[string]any{"adminApproved": true, "kycVerified": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "active" {
		t.Errorf("status = %v, want active", body["status"])
	}

	// riders cannot reach the admin surface
	w = env.do(t, http.MethodPatch, path, env.token(t, env.rider), map[string]any{"adminApproved": true})
	if w.Code != http.StatusForbidden {
		t.Errorf("rider decide: status = %d, want 403", w.Code)
	}

	w = env.do(t, http.MethodPatch, "/admin/bookings/9999", adminTok, map[string]any{"adminApproved": true})
	if w.Code != http.StatusNotFound {
		t.Errorf("missing booking: status = %d, want 404", w.Code)
	}
}

func TestBookingListFilterValidation(t *testing.T) {
	env := newAPIEnv(t)
	w := env.do(t, http.MethodGet, "/bookings?userId=abc", env.token(t, env.rider), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "VALIDATION_ERROR" {
		t.Errorf("code = %v, want VALIDATION_ERROR", body["code"])
	}
}

func TestLoginEndpoint(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/users", "", map[string]any{
		"name": "New Rider", "email": "new@example.com", "password": "s3cret", "role": "rider",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email": "new@example.com", "password": "s3cret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["accessToken"] == "" || body["accessToken"] == nil {
		t.Error("login should return an access token")
	}

	w = env.do(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email": "new@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status = %d, want 401", w.Code)
	}
}

func TestUserUpdateEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	selfPath := fmt.Sprintf("/users?id=%d", env.rider.ID)

	w := env.do(t, http.MethodPut, selfPath, env.token(t, env.rider), map[string]any{
		"phone": "9000000001", "city": "Danapur",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("self edit: status = %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["phone"] != "9000000001" || body["city"] != "Danapur" {
		t.Errorf("self edit not applied: %v", body)
	}

	// riders cannot edit other users
	otherPath := fmt.Sprintf("/users?id=%d", env.partner.ID)
	w = env.do(t, http.MethodPut, otherPath, env.token(t, env.rider), map[string]any{"phone": "9000000002"})
	if w.Code != http.StatusForbidden {
		t.Errorf("cross edit: status = %d, want 403", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "FORBIDDEN" {
		t.Errorf("code = %v, want FORBIDDEN", body["code"])
	}

	// admins can edit anyone
	w = env.do(t, http.MethodPut, otherPath, env.token(t, env.admin), map[string]any{"name": "Ravi Fleet Pvt Ltd"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin edit: status = %d body=%s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["name"] != "Ravi Fleet Pvt Ltd" {
		t.Errorf("admin edit not applied: %v", body)
	}

	w = env.do(t, http.MethodPut, selfPath, "", map[string]any{"phone": "9000000003"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
}

func TestVehicleUpdateEndpointRejectsBlankRegistration(t *testing.T) {
	env := newAPIEnv(t)
	tok := env.token(t, env.partner)

	w := env.do(t, http.MethodPost, "/vehicles", tok, activaBody(env.partner.ID))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}
	id := int(decodeBody(t, w)["id"].(float64))

	w = env.do(t, http.MethodPut, fmt.Sprintf("/vehicles?id=%d", id), tok, map[string]any{"registrationNumber": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "MISSING_FIELD" {
		t.Errorf("code = %v, want MISSING_FIELD", body["code"])
	}
}
