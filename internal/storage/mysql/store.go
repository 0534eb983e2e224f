package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"alx_stays/internal/domain"
)

type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// UpsertProperty writes one listing; the seeder drives this.
func (s *Store) UpsertProperty(ctx context.Context, p domain.Property) error {
	amen, _ := json.Marshal(p.Amenities)
	imgs, _ := json.Marshal(p.Images)
	host, _ := json.Marshal(p.Host)
	_, err := s.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		p.Title,
		p.Description,
		p.Price,
		nullStr(p.ImageURL),
		string(imgs),
		p.Rating,
		p.ReviewCount,
		p.Type,
		p.Bedrooms,
		p.Bathrooms,
		p.MaxGuests,
		p.Location.Address,
		p.Location.City,
		p.Location.Country,
		p.Location.Coordinates[0],
		p.Location.Coordinates[1],
		string(amen),
		string(host),
		nullStr(p.AvailableFrom),
		nullStr(p.AvailableTo),
		p.Featured,
	)
	return err
}

func (s *Store) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := s.db.QueryContext(ctx, listPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	row := s.db.QueryRowContext(ctx, getPropertySQL, id)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return domain.Property{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	var imageURL, availFrom, availTo sql.NullString
	var imagesJSON, amenitiesJSON, hostJSON []byte
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price,
		&imageURL, &imagesJSON, &p.Rating, &p.ReviewCount,
		&p.Type, &p.Bedrooms, &p.Bathrooms, &p.MaxGuests,
		&p.Location.Address, &p.Location.City, &p.Location.Country,
		&p.Location.Coordinates[0], &p.Location.Coordinates[1],
		&amenitiesJSON, &hostJSON,
		&availFrom, &availTo, &p.Featured,
		&createdAt, &updatedAt,
	); err != nil {
		return domain.Property{}, err
	}

	if imageURL.Valid {
		p.ImageURL = imageURL.String
	}
	if availFrom.Valid {
		p.AvailableFrom = availFrom.String
	}
	if availTo.Valid {
		p.AvailableTo = availTo.String
	}
	_ = json.Unmarshal(imagesJSON, &p.Images)
	_ = json.Unmarshal(amenitiesJSON, &p.Amenities)
	_ = json.Unmarshal(hostJSON, &p.Host)
	if createdAt.Valid {
		p.CreatedAt = createdAt.Time.UTC().Format(time.RFC3339)
	}
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.Time.UTC().Format(time.RFC3339)
	}
	return p, nil
}

func (s *Store) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, listReviewsSQL, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var userImage sql.NullString
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&rv.ID, &rv.PropertyID, &rv.UserID, &rv.UserName,
			&userImage, &rv.Rating, &rv.Comment, &rv.CreatedAt, &updatedAt,
		); err != nil {
			return nil, err
		}
		if userImage.Valid {
			rv.UserImage = userImage.String
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			rv.UpdatedAt = &t
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (s *Store) AddReview(ctx context.Context, r domain.Review) error {
	_, err := s.db.ExecContext(ctx, insertReviewSQL,
		r.ID, r.PropertyID, r.UserID, r.UserName,
		nullStr(r.UserImage), r.Rating, r.Comment, r.CreatedAt,
	)
	return err
}

func (s *Store) SaveBooking(ctx context.Context, b domain.Booking) error {
	_, err := s.db.ExecContext(ctx, insertBookingSQL,
		b.ID, b.FirstName, b.LastName, b.Email, b.Status, b.CreatedAt,
	)
	return err
}
