package domain

import "time"

// Review rating is 1..5; comment length bounds (10..1000) are enforced on
// the write path, the read path takes rows as stored.
type Review struct {
	ID         string     `json:"id"`
	PropertyID string     `json:"propertyId"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	UserImage  string     `json:"userImage,omitempty"`
	Rating     float64    `json:"rating"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
