package services

import (
	"context"

	"github.com/sbilibin2017/lightbnb/internal/logger"
	"github.com/sbilibin2017/lightbnb/internal/models"
)

//go:generate mockgen -source=reservations.go -destination=reservations_mock.go -package=services

// ReservationReader lists a guest's reservations.
type ReservationReader interface {
	ListByGuestID(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error)
}

type ReservationService struct {
	reader ReservationReader
}

func NewReservationService(reader ReservationReader) *ReservationService {
	return &ReservationService{reader: reader}
}

// ListReservationsForGuest returns at most ten reservations of the guest, one
// per property, ordered by property title. An unknown guest yields an empty list.
func (svc *ReservationService) ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error) {
	reservations, err := svc.reader.ListByGuestID(ctx, guestID, limit)
	if err != nil {
		err = classify("list reservations", err, nil)
		logger.Log.Errorw("failed to list reservations", "guestID", guestID, "limit", limit, "err", err)
		return nil, err
	}
	if reservations == nil {
		reservations = []models.GuestReservation{}
	}
	return reservations, nil
}
