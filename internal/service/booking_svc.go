package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/events"
	"github.com/priyanshudas00/zippgo/internal/repository"
)

// EventPublisher is what the booking service needs from pkg/mq.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type BookingSvc struct {
	bookings *repository.BookingRepo
	vehicles *repository.VehicleRepo
	users    *repository.UserRepo
	payments *repository.PaymentRepo
	pub      EventPublisher
}

func NewBookingSvc(b *repository.BookingRepo, v *repository.VehicleRepo, u *repository.UserRepo, p *repository.PaymentRepo, pub EventPublisher) *BookingSvc {
	return &BookingSvc{bookings: b, vehicles: v, users: u, payments: p, pub: pub}
}

type CreateBookingInput struct {
	UserID         uint
	VehicleID      uint
	StartDate      string // RFC3339
	EndDate        string // RFC3339, optional
	DurationType   string
	TotalAmount    int64
	PickupLocation string
	DropLocation   string
	KYC            domain.KYCPayload
	Payment        domain.PaymentPayload
}

func (s *BookingSvc) Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	if _, err := s.vehicles.ByID(ctx, in.VehicleID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("vehicle")
		}
		return nil, err
	}
	if !domain.ValidDurationType(in.DurationType) {
		return nil, apperrors.Validation("invalid duration type: %s", in.DurationType)
	}
	if in.TotalAmount <= 0 {
		return nil, apperrors.Validation("totalAmount must be positive")
	}
	if in.PickupLocation == "" {
		return nil, apperrors.MissingField("pickupLocation")
	}
	start, err := time.Parse(time.RFC3339, in.StartDate)
	if err != nil {
		return nil, apperrors.Validation("startDate must be RFC3339")
	}
	var end *time.Time
	if in.EndDate != "" {
		e, err := time.Parse(time.RFC3339, in.EndDate)
		if err != nil {
			return nil, apperrors.Validation("endDate must be RFC3339")
		}
		if !e.After(start) {
			return nil, apperrors.Validation("endDate must be after startDate")
		}
		e = e.UTC()
		end = &e
	}

	b := &domain.Booking{
		UserID:         in.UserID,
		VehicleID:      in.VehicleID,
		StartDate:      start.UTC(),
		EndDate:        end,
		DurationType:   domain.DurationType(in.DurationType),
		TotalAmount:    in.TotalAmount,
		Status:         domain.BookingPending,
		PaymentStatus:  domain.PaymentPending,
		PickupLocation: in.PickupLocation,
		DropLocation:   in.DropLocation,
		KYC:            in.KYC,
		Payment:        in.Payment,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if in.Payment.Method != "" {
		ref := in.Payment.Reference
		if ref == "" {
			ref = uuid.NewString()
		}
		rec := &domain.PaymentRecord{
			BookingID: b.ID,
			Reference: ref,
			Method:    in.Payment.Method,
			Amount:    b.TotalAmount,
			Status:    string(domain.PaymentPending),
		}
		if err := s.payments.Create(ctx, rec); err != nil {
			return nil, err
		}
	}

	_ = s.pub.PublishJSON(ctx, events.RKBookingCreated, events.BookingCreated{
		BookingID: b.ID,
		UserID:    b.UserID,
		VehicleID: b.VehicleID,
		Start:     b.StartDate.Unix(),
		Amount:    b.TotalAmount,
	})
	return b, nil
}

// Decide applies an admin review. The two flags are caller-asserted; the
// booking turns active only when both are true, otherwise it stays (or
// returns to) pending. No events are published: approval mutates exactly
// one record and nothing else.
func (s *BookingSvc) Decide(ctx context.Context, id uint, approve, verifyKyc bool) (*domain.Booking, error) {
	b, err := s.bookings.Decide(ctx, id, approve, verifyKyc)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, err
	}
	return b, nil
}

func (s *BookingSvc) Cancel(ctx context.Context, id uint) (*domain.Booking, error) {
	b, err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, events.RKBookingCancelled, events.BookingSimple{BookingID: b.ID})
	return b, nil
}

func (s *BookingSvc) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	b, err := s.bookings.ByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, err
	}
	return b, nil
}

func (s *BookingSvc) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}
