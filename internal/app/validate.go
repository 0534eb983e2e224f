package app

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"alx_stays/internal/domain"
)

const (
	minCommentLen = 10
	maxCommentLen = 1000
)

// ReviewInput is the raw request body for a review submission. Rating is
// a json.Number so a non-numeric value is rejected explicitly instead of
// silently coerced.
type ReviewInput struct {
	UserID    string      `json:"userId"`
	UserName  string      `json:"userName"`
	UserImage string      `json:"userImage,omitempty"`
	Rating    json.Number `json:"rating"`
	Comment   string      `json:"comment"`
}

// ParseReview is the single parse-and-validate step at the API boundary:
// it returns either a fully-formed Review or a wrapped ErrValidation with
// the rejection reason. It never panics on malformed input.
func ParseReview(propertyID string, in ReviewInput) (domain.Review, error) {
	if propertyID == "" {
		return domain.Review{}, fmt.Errorf("%w: property id is required", domain.ErrValidation)
	}
	if in.UserID == "" {
		return domain.Review{}, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if in.UserName == "" {
		return domain.Review{}, fmt.Errorf("%w: userName is required", domain.ErrValidation)
	}
	rating, err := in.Rating.Float64()
	if err != nil {
		return domain.Review{}, fmt.Errorf("%w: rating must be numeric", domain.ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	comment := strings.TrimSpace(in.Comment)
	if len(comment) < minCommentLen {
		return domain.Review{}, fmt.Errorf("%w: comment must be at least %d characters", domain.ErrValidation, minCommentLen)
	}
	if len(comment) > maxCommentLen {
		return domain.Review{}, fmt.Errorf("%w: comment must be at most %d characters", domain.ErrValidation, maxCommentLen)
	}
	return domain.Review{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		UserID:     in.UserID,
		UserName:   in.UserName,
		UserImage:  in.UserImage,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ValidateBooking checks that every payment form field is present.
func ValidateBooking(in domain.BookingInput) error {
	fields := []struct{ name, val string }{
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"email", in.Email},
		{"phoneNumber", in.PhoneNumber},
		{"cardNumber", in.CardNumber},
		{"expirationDate", in.ExpirationDate},
		{"cvv", in.CVV},
		{"billingAddress", in.BillingAddress},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}
	return nil
}
