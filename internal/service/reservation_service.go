package service

import (
	"context"
	"errors"

	"rms-web/internal/domain"
)

var ErrBadReservation = errors.New("reservation needs a date, time, phone number and at least one guest")

type ReservationService struct {
	backend ReservationBackend
}

func NewReservationService(backend ReservationBackend) *ReservationService {
	return &ReservationService{backend: backend}
}

func (s *ReservationService) List(ctx context.Context, token string) ([]domain.Reservation, error) {
	return s.backend.Reservations(ctx, token)
}

func (s *ReservationService) Create(ctx context.Context, token string, reservation domain.Reservation) (domain.Reservation, error) {
	if reservation.Date == "" || reservation.Time == "" ||
		reservation.PhoneNumber == "" || reservation.NumberOfGuests < 1 {
		return domain.Reservation{}, ErrBadReservation
	}
	return s.backend.CreateReservation(ctx, token, reservation)
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
