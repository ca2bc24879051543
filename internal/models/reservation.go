package models

import "time"

// ReservationDB represents a reservation row in the database
type ReservationDB struct {
	ID         int64     `json:"id" db:"id"`
	GuestID    int64     `json:"guest_id" db:"guest_id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
}

// GuestReservation is one row of a guest's reservation list: the reservation,
// the reserved property's columns and the property's mean review rating.
//
// Property columns are flattened rather than embedded because both tables
// carry an "id" column.
type GuestReservation struct {
	ReservationDB
	OwnerID           int64    `json:"owner_id" db:"owner_id"`
	Title             string   `json:"title" db:"title"`
	Description       string   `json:"description" db:"description"`
	ThumbnailPhotoURL string   `json:"thumbnail_photo_url" db:"thumbnail_photo_url"`
	CoverPhotoURL     string   `json:"cover_photo_url" db:"cover_photo_url"`
	CostPerNight      int64    `json:"cost_per_night" db:"cost_per_night"`
	ParkingSpaces     int      `json:"parking_spaces" db:"parking_spaces"`
	NumberOfBathrooms int      `json:"number_of_bathrooms" db:"number_of_bathrooms"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms" db:"number_of_bedrooms"`
	Country           string   `json:"country" db:"country"`
	Street            string   `json:"street" db:"street"`
	City              string   `json:"city" db:"city"`
	Province          string   `json:"province" db:"province"`
	PostCode          string   `json:"post_code" db:"post_code"`
	AverageRating     *float64 `json:"average_rating" db:"average_rating"`
}
