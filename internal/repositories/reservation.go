package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/lightbnb/internal/logger"
	"github.com/sbilibin2017/lightbnb/internal/models"
)

// MaxGuestReservations caps a guest's reservation list whatever limit the caller asks for.
const MaxGuestReservations = 10

// DefaultLimit is used when a caller passes a non-positive limit.
const DefaultLimit = 10

// ReservationReadRepository handles reservation read operations
type ReservationReadRepository struct {
	db *sqlx.DB
}

func NewReservationReadRepository(db *sqlx.DB) *ReservationReadRepository {
	return &ReservationReadRepository{db: db}
}

// ListByGuestID returns one reservation per reserved property for the guest,
// joined with the property and its mean rating and ordered by property title.
// When a guest holds several reservations on the same property the one with
// the lowest id is kept. The result never exceeds MaxGuestReservations rows.
func (r *ReservationReadRepository) ListByGuestID(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error) {
	const query = `
		SELECT reservations.id, reservations.guest_id, reservations.property_id,
		       reservations.start_date, reservations.end_date,
		       properties.owner_id, properties.title, properties.description,
		       properties.thumbnail_photo_url, properties.cover_photo_url,
		       properties.cost_per_night, properties.parking_spaces,
		       properties.number_of_bathrooms, properties.number_of_bedrooms,
		       properties.country, properties.street, properties.city,
		       properties.province, properties.post_code,
		       avg(property_reviews.rating)::float8 AS average_rating
		FROM (
			SELECT DISTINCT ON (property_id) *
			FROM reservations
			WHERE guest_id = $1
			ORDER BY property_id, id
		) AS reservations
		JOIN properties ON reservations.property_id = properties.id
		JOIN property_reviews ON properties.id = property_reviews.property_id
		GROUP BY properties.id, reservations.id, reservations.guest_id, reservations.property_id,
		         reservations.start_date, reservations.end_date
		ORDER BY properties.title
		LIMIT $2
	`
	if limit <= 0 {
		limit = DefaultLimit
	}
	args := []any{guestID, limit}

	reservations := []models.GuestReservation{}
	err := r.db.SelectContext(ctx, &reservations, query, args...)

	logger.Query(query, args, len(reservations), err)

	if err != nil {
		return nil, err
	}

	if len(reservations) > MaxGuestReservations {
		reservations = reservations[:MaxGuestReservations]
	}

	return reservations, nil
}
