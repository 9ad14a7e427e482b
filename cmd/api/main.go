package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/priyanshudas00/zippgo/internal/api"
	"github.com/priyanshudas00/zippgo/internal/repository"
	"github.com/priyanshudas00/zippgo/internal/service"
	"github.com/priyanshudas00/zippgo/pkg/auth"
	"github.com/priyanshudas00/zippgo/pkg/config"
	"github.com/priyanshudas00/zippgo/pkg/db"
	"github.com/priyanshudas00/zippgo/pkg/mq"
	"github.com/priyanshudas00/zippgo/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("zippgo-api")
	defer shutdownTracer(context.Background())

	gdb := db.Open(cfg.MySQLDSN)

	users := repository.NewUserRepo(gdb)
	vehicles := repository.NewVehicleRepo(gdb)
	bookings := repository.NewBookingRepo(gdb)
	coupons := repository.NewCouponRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)
	for _, m := range []interface{ Migrate() error }{users, vehicles, bookings, coupons, payments} {
		must(0, m.Migrate())
	}
	if cfg.SeedData {
		db.Seed(gdb)
	}

	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange))
	defer pub.Close()

	jwtm := auth.NewManager(cfg.JWTSecret)
	h := api.Handlers{
		Vehicles: api.NewVehicleHandler(service.NewVehicleSvc(vehicles, users)),
		Bookings: api.NewBookingHandler(service.NewBookingSvc(bookings, vehicles, users, payments, pub)),
		Users:    api.NewUserHandler(service.NewUserSvc(users)),
		Coupons:  api.NewCouponHandler(service.NewCouponSvc(coupons)),
		Auth: api.NewAuthHandler(service.NewAuthSvc(users, jwtm,
			time.Duration(cfg.JWTExpireMin)*time.Minute,
			time.Duration(cfg.RefreshExpireHr)*time.Hour)),
		JWT: jwtm,
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: api.NewRouter(h)}
	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Println("[api] stopped")
}
