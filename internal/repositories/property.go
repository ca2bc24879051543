package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/lightbnb/internal/logger"
	"github.com/sbilibin2017/lightbnb/internal/models"
)

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
	properties.country, properties.street, properties.city, properties.province, properties.post_code`

// PropertyReadRepository handles property search
type PropertyReadRepository struct {
	db *sqlx.DB
}

func NewPropertyReadRepository(db *sqlx.DB) *PropertyReadRepository {
	return &PropertyReadRepository{db: db}
}

// buildSearchQuery composes the search statement. Filters are applied in a
// fixed order (city, owner, minimum price, maximum price, minimum rating) and
// the limit is always bound last.
func buildSearchQuery(filters models.PropertyFilters, limit int) (string, []any) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var b queryBuilder

	if filters.City != nil {
		b.where("properties.city ILIKE " + b.bind("%"+*filters.City+"%"))
	}
	if filters.OwnerID != nil {
		b.where("properties.owner_id = " + b.bind(*filters.OwnerID))
	}
	// Price filters arrive in cents.
	if filters.MinimumPricePerNight != nil {
		b.where("properties.cost_per_night >= " + b.bind(float64(*filters.MinimumPricePerNight)/100) + "::numeric")
	}
	if filters.MaximumPricePerNight != nil {
		b.where("properties.cost_per_night <= " + b.bind(float64(*filters.MaximumPricePerNight)/100) + "::numeric")
	}
	if filters.MinimumRating != nil {
		b.havingCond("avg(property_reviews.rating) >= " + b.bind(*filters.MinimumRating))
	}

	parts := []string{
		"SELECT " + propertyColumns + ", avg(property_reviews.rating)::float8 AS average_rating",
		"FROM properties",
		"LEFT JOIN property_reviews ON properties.id = property_reviews.property_id",
	}
	if w := b.whereClause(); w != "" {
		parts = append(parts, w)
	}
	parts = append(parts, "GROUP BY properties.id")
	if h := b.havingClause(); h != "" {
		parts = append(parts, h)
	}
	parts = append(parts,
		"ORDER BY properties.cost_per_night",
		"LIMIT "+b.bind(limit),
	)

	return strings.Join(parts, "\n"), b.args
}

// Search returns properties matching filters with their mean rating, cheapest first.
func (r *PropertyReadRepository) Search(ctx context.Context, filters models.PropertyFilters, limit int) ([]models.PropertyListing, error) {
	query, args := buildSearchQuery(filters, limit)

	listings := []models.PropertyListing{}
	err := r.db.SelectContext(ctx, &listings, query, args...)

	logger.Query(query, args, len(listings), err)

	if err != nil {
		return nil, err
	}
	return listings, nil
}

// PropertyWriteRepository handles property inserts
type PropertyWriteRepository struct {
	db *sqlx.DB
}

func NewPropertyWriteRepository(db *sqlx.DB) *PropertyWriteRepository {
	return &PropertyWriteRepository{db: db}
}

// Save inserts p as given and returns the stored row.
func (r *PropertyWriteRepository) Save(ctx context.Context, p models.NewProperty) (*models.PropertyDB, error) {
	const query = `
		INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code
	`
	args := []any{
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNight, p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
		p.Country, p.Street, p.City, p.Province, p.PostCode,
	}

	var saved models.PropertyDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Query(query, args, saved.ID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}
