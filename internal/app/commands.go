package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"alx_stays/internal/domain"
)

type CommandService struct {
	store    domain.PropertyStore
	cache    domain.Cache
	payments domain.PaymentProcessor
}

func NewCommandService(s domain.PropertyStore, c domain.Cache, p domain.PaymentProcessor) *CommandService {
	return &CommandService{store: s, cache: c, payments: p}
}

// AddReview validates, persists, and invalidates the review cache for the
// property so the next read sees the new entry.
func (s *CommandService) AddReview(ctx context.Context, propertyID string, in ReviewInput) (domain.Review, error) {
	rv, err := ParseReview(propertyID, in)
	if err != nil {
		return domain.Review{}, err
	}
	// the property must exist before a review can hang off it
	if _, err := s.store.GetProperty(ctx, propertyID); err != nil {
		return domain.Review{}, err
	}
	if err := s.store.AddReview(ctx, rv); err != nil {
		return domain.Review{}, fmt.Errorf("add review for %s: %w", propertyID, err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "reviews:"+propertyID)
		_ = s.cache.Del(ctx, "property:"+propertyID)
	}
	return rv, nil
}

// CreateBooking runs field validation, charges through the payment port,
// and records the booking. A declined charge surfaces ErrPaymentDeclined.
func (s *CommandService) CreateBooking(ctx context.Context, in domain.BookingInput) (domain.Booking, error) {
	if err := ValidateBooking(in); err != nil {
		return domain.Booking{}, err
	}
	ok, err := s.payments.Process(ctx, in)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("payment processing: %w", err)
	}
	if !ok {
		return domain.Booking{}, domain.ErrPaymentDeclined
	}
	b := domain.Booking{
		ID:        "BKG-" + strings.ToUpper(uuid.NewString()[:8]),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Status:    "confirmed",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveBooking(ctx, b); err != nil {
		// the charge went through; log loudly but don't fail the booking
		log.Error().Err(err).Str("booking_id", b.ID).Msg("save booking failed after successful payment")
	}
	return b, nil
}
