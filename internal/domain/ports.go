package domain

import "context"

// PropertyStore is the storage port. Implementations must return
// properties in a stable order so the filter pipeline stays
// order-preserving, and reviews newest-first.
type PropertyStore interface {
	ListProperties(ctx context.Context) ([]Property, error)
	GetProperty(ctx context.Context, id string) (Property, error)
	ListReviews(ctx context.Context, propertyID string) ([]Review, error)
	AddReview(ctx context.Context, r Review) error
	SaveBooking(ctx context.Context, b Booking) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// PaymentProcessor is the external payment collaborator. The bundled
// implementation is a simulator; a real gateway plugs in here.
type PaymentProcessor interface {
	Process(ctx context.Context, in BookingInput) (bool, error)
}
