package service

import (
	"context"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// named in-memory database so every pooled connection sees the same data
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&domain.User{}, &domain.Vehicle{}, &domain.Booking{}, &domain.Coupon{}, &domain.PaymentRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func seedPartner(t *testing.T, users *repository.UserRepo) *domain.User {
	t.Helper()
	u := &domain.User{Name: "Ravi Fleet Services", Email: "ravi@zippgo.in", Role: domain.RolePartner}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed partner: %v", err)
	}
	return u
}

func seedRider(t *testing.T, users *repository.UserRepo) *domain.User {
	t.Helper()
	u := &domain.User{Name: "Ankit Kumar", Email: "ankit@example.com", Role: domain.RoleRider}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed rider: %v", err)
	}
	return u
}

type stubPublisher struct {
	keys []string
}

func (s *stubPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	s.keys = append(s.keys, key)
	return nil
}
