package service

import (
	"context"
	"errors"
	"fmt"

	"rms-web/internal/backend"
	"rms-web/internal/domain"
)

var (
	// ErrForbidden hides administrative operations from roles that don't
	// get the controls.
	ErrForbidden = errors.New("role not allowed to manage orders")
	// ErrBadStatus rejects a transition to an unknown status before the
	// request leaves the client.
	ErrBadStatus = errors.New("unknown order status")
)

// OrderService backs the order history / tracking screen and the role-gated
// administration view.
type OrderService struct {
	backend OrderBackend
}

func NewOrderService(backend OrderBackend) *OrderService {
	return &OrderService{backend: backend}
}

func (s *OrderService) List(ctx context.Context, token string) ([]domain.Order, error) {
	orders, _, err := s.backend.Orders(ctx, token)
	return orders, err
}

func (s *OrderService) Get(ctx context.Context, token string, id int) (domain.Order, error) {
	return s.backend.Order(ctx, token, id)
}

// Update requests a status transition and/or crew assignment. The controls
// only render for managing roles, so the same gate applies here; the server
// stays authoritative over the transition itself.
func (s *OrderService) Update(ctx context.Context, token string, id int, update backend.OrderUpdate) (domain.Order, error) {
	if update.Status != nil && !update.Status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrBadStatus, *update.Status)
	}

	profile, err := s.backend.Me(ctx, token)
	if err != nil {
		return domain.Order{}, err
	}
	if !profile.Role().CanManageOrders() {
		return domain.Order{}, ErrForbidden
	}

	return s.backend.UpdateOrder(ctx, token, id, update)
}

// Crew lists delivery-crew users for the assignment dropdown; gated the same
// way the dropdown is.
func (s *OrderService) Crew(ctx context.Context, token string) ([]domain.CrewMember, error) {
	profile, err := s.backend.Me(ctx, token)
	if err != nil {
		return nil, err
	}
	if !profile.Role().CanManageOrders() {
		return nil, ErrForbidden
	}
	return s.backend.DeliveryCrew(ctx, token)
}

var _ OrderServiceInterface = (*OrderService)(nil)
