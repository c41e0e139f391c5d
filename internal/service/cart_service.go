package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"rms-web/internal/cart"
	"rms-web/internal/domain"
	"rms-web/internal/pricing"
)

// ErrEmptyCart rejects a checkout with nothing in the cart before any remote
// call is made.
var ErrEmptyCart = errors.New("cart is empty")

// CartService orchestrates the cart screen: it keeps one local mirror per
// session and runs the optimistic quantity-edit protocol against the remote
// cart. publisher may be nil; order events are best effort.
type CartService struct {
	backend   CartBackend
	publisher OrderPublisher

	mu      sync.Mutex
	mirrors map[string]*cart.Mirror
}

func NewCartService(backend CartBackend, publisher OrderPublisher) *CartService {
	return &CartService{
		backend:   backend,
		publisher: publisher,
		mirrors:   make(map[string]*cart.Mirror),
	}
}

func (s *CartService) mirror(token string) *cart.Mirror {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mirrors[token]
	if !ok {
		m = cart.NewMirror()
		s.mirrors[token] = m
	}
	return m
}

// View refreshes the mirror from the remote cart and prices it with the
// user's current bonus/tip inputs.
func (s *CartService) View(ctx context.Context, token string, opts QuoteOptions) (CartView, error) {
	lines, err := s.backend.CartItems(ctx, token)
	if err != nil {
		return CartView{}, err
	}
	m := s.mirror(token)
	m.Replace(lines)

	profile, err := s.backend.Me(ctx, token)
	if err != nil {
		return CartView{}, err
	}
	return s.view(m, profile.BonusEarned, opts), nil
}

func (s *CartService) view(m *cart.Mirror, bonusEarned decimal.Decimal, opts QuoteOptions) CartView {
	lines := m.Lines()

	quote := pricing.NewQuote(lines, bonusEarned)
	quote.SetTip(opts.Tip)
	if opts.UseAllBonus {
		quote.ToggleAllBonus()
	} else {
		quote.SetBonus(opts.Bonus)
	}

	var busy []int
	for _, line := range lines {
		if m.Busy(line.MenuItem.ID) {
			busy = append(busy, line.MenuItem.ID)
		}
	}

	return CartView{
		Lines:     lines,
		BusyLines: busy,
		Quote:     quote,
		Total:     quote.Total(),
	}
}

// Add puts an item in the cart with the chosen quantity (the single-item
// screen's add-to-cart control).
func (s *CartService) Add(ctx context.Context, token string, menuItemID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if err := s.backend.AddCartItem(ctx, token, menuItemID, quantity); err != nil {
		return err
	}
	// Refresh the mirror so a following quantity edit sees the line.
	if lines, err := s.backend.CartItems(ctx, token); err == nil {
		s.mirror(token).Replace(lines)
	}
	return nil
}

// ChangeQuantity applies a +1/-1 edit optimistically, sends the delta, and
// rolls the line back if the remote rejects it. An edit against a line that
// is already in flight is suppressed.
func (s *CartService) ChangeQuantity(ctx context.Context, token string, menuItemID, delta int) (CartView, error) {
	m := s.mirror(token)

	prev, err := m.StartEdit(menuItemID, delta)
	if errors.Is(err, cart.ErrUnknownLine) {
		// Mirror may be cold (fresh session); hydrate once and retry.
		lines, fetchErr := s.backend.CartItems(ctx, token)
		if fetchErr != nil {
			return CartView{}, fetchErr
		}
		m.Replace(lines)
		prev, err = m.StartEdit(menuItemID, delta)
	}
	if err != nil {
		return CartView{}, err
	}

	sendErr := s.backend.AddCartItem(ctx, token, menuItemID, delta)
	m.FinishEdit(menuItemID, prev, sendErr != nil)
	if sendErr != nil {
		log.Printf("[cart] quantity update failed for item %d: %v", menuItemID, sendErr)
	}

	profile, err := s.backend.Me(ctx, token)
	if err != nil {
		return CartView{}, err
	}
	view := s.view(m, profile.BonusEarned, QuoteOptions{})
	return view, sendErr
}

func (s *CartService) Remove(ctx context.Context, token string, menuItemID int) error {
	if err := s.backend.RemoveCartItem(ctx, token, menuItemID); err != nil {
		return err
	}
	s.mirror(token).Drop(menuItemID)
	return nil
}

// Clear empties the remote cart and resets the mirror.
func (s *CartService) Clear(ctx context.Context, token string) error {
	if err := s.backend.ClearCart(ctx, token); err != nil {
		return err
	}
	s.mirror(token).Clear()
	return nil
}

// Checkout clamps the redemption client-side, submits the order once, and
// clears the local mirror only on success. Failures leave the cart intact.
func (s *CartService) Checkout(ctx context.Context, token string, bonusUsed, tip decimal.Decimal) (domain.OrderReceipt, error) {
	m := s.mirror(token)

	lines, err := s.backend.CartItems(ctx, token)
	if err != nil {
		return domain.OrderReceipt{}, err
	}
	m.Replace(lines)
	if len(lines) == 0 {
		return domain.OrderReceipt{}, ErrEmptyCart
	}

	profile, err := s.backend.Me(ctx, token)
	if err != nil {
		return domain.OrderReceipt{}, err
	}

	subtotal := pricing.Subtotal(lines)
	bonusUsed = pricing.ClampBonus(bonusUsed, profile.BonusEarned, subtotal)
	if tip.IsNegative() {
		tip = decimal.Zero
	}

	receipt, err := s.backend.CreateOrder(ctx, token, bonusUsed, tip)
	if err != nil {
		return domain.OrderReceipt{}, err
	}
	m.Clear()

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      domain.EventOrderPlaced,
			OrderID:   receipt.ID,
			Total:     receipt.Total,
			BonusUsed: receipt.BonusUsed,
			Tip:       receipt.Tip,
			PlacedAt:  time.Now(),
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("[cart] order event publish failed: %v", err)
		}
	}

	return receipt, nil
}

var _ CartServiceInterface = (*CartService)(nil)
