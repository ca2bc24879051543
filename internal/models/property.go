package models

// PropertyDB represents a property listing row in the database
type PropertyDB struct {
	ID                int64  `json:"id" db:"id"`
	OwnerID           int64  `json:"owner_id" db:"owner_id"`
	Title             string `json:"title" db:"title"`
	Description       string `json:"description" db:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" db:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url" db:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night" db:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces" db:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" db:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" db:"number_of_bedrooms"`
	Country           string `json:"country" db:"country"`
	Street            string `json:"street" db:"street"`
	City              string `json:"city" db:"city"`
	Province          string `json:"province" db:"province"`
	PostCode          string `json:"post_code" db:"post_code"`
}

// NewProperty holds every caller-supplied column of a property insert.
// No field is defaulted or validated before it reaches the store.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}

// PropertyListing is a property search hit together with its mean review rating.
// AverageRating is nil when the property has no reviews.
type PropertyListing struct {
	PropertyDB
	AverageRating *float64 `json:"average_rating" db:"average_rating"`
}

// PropertyFilters narrows a property search. A nil field is not applied.
type PropertyFilters struct {
	City                 *string  `json:"city,omitempty"`
	OwnerID              *int64   `json:"owner_id,omitempty"`
	MinimumPricePerNight *int64   `json:"minimum_price_per_night,omitempty"` // cents
	MaximumPricePerNight *int64   `json:"maximum_price_per_night,omitempty"` // cents
	MinimumRating        *float64 `json:"minimum_rating,omitempty"`
}
